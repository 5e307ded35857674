package domain

import (
	"context"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/lenstown/backend/internal/entity"
	"github.com/lenstown/backend/internal/repository"
	"github.com/lenstown/backend/pkg/blockchain/eth"
	"github.com/lenstown/backend/pkg/ethutil"
	"github.com/lenstown/backend/pkg/xcontext"
)

// payoutSubmitter signs and submits one ERC-20 transfer per call and records
// every attempt as a TokenPayout row. Platform user ids are EVM addresses, so
// they double as transfer recipients.
type payoutSubmitter struct {
	tokenPayoutRepo repository.TokenPayoutRepository
	ethClient       eth.EthClient
}

func (s *payoutSubmitter) submit(
	ctx context.Context, userID, spaceID string, amount int64, purpose entity.PayoutPurposeType,
) error {
	payout := &entity.TokenPayout{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		SpaceID: spaceID,
		Amount:  amount,
		Purpose: purpose,
		Status:  entity.PayoutStatusSubmitted,
	}

	recipient := ethcommon.HexToAddress(userID)
	tx, err := s.ethClient.GetSignedTransferTokenTx(ctx, recipient, big.NewInt(amount))
	if err != nil {
		s.recordFailure(ctx, payout)
		return err
	}

	if err := s.ethClient.SendTransaction(ctx, tx); err != nil {
		s.recordFailure(ctx, payout)
		return err
	}

	payout.TxHash = tx.Hash().Hex()
	if err := s.tokenPayoutRepo.Create(ctx, payout); err != nil {
		// The transfer is already out, losing the bookkeeping row is not
		// worth failing the whole flow over.
		xcontext.Logger(ctx).Errorf("Cannot record token payout: %v", err)
	}

	return nil
}

func (s *payoutSubmitter) recordFailure(ctx context.Context, payout *entity.TokenPayout) {
	payout.Status = entity.PayoutStatusFailure
	if err := s.tokenPayoutRepo.Create(ctx, payout); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot record failed token payout: %v", err)
	}
}

// botWalletBalance reads the bot wallet's holding of the configured token.
func (s *payoutSubmitter) botWalletBalance(ctx context.Context) (*big.Int, error) {
	cfg := xcontext.Configs(ctx).Chain
	key, err := ethutil.ParsePrivateKey(cfg.WalletPrivateKey)
	if err != nil {
		return nil, err
	}

	return s.ethClient.ERC20BalanceOf(ctx, cfg.TokenAddress, ethutil.AddressOf(key).Hex())
}
