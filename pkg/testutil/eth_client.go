package testutil

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/lenstown/backend/pkg/blockchain/eth"
)

type MockEthClient struct {
	BalanceAtFunc                func(context.Context, common.Address, *big.Int) (*big.Int, error)
	ERC20BalanceOfFunc           func(context.Context, string, string) (*big.Int, error)
	GetSignedTransferTokenTxFunc func(context.Context, common.Address, *big.Int) (*ethtypes.Transaction, error)
	SendTransactionFunc          func(context.Context, *ethtypes.Transaction) error
}

func (c *MockEthClient) BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error) {
	if c.BalanceAtFunc != nil {
		return c.BalanceAtFunc(ctx, from, block)
	}

	return nil, errors.New("not implemented")
}

func (c *MockEthClient) ERC20BalanceOf(ctx context.Context, tokenAddress, accountAddress string) (*big.Int, error) {
	if c.ERC20BalanceOfFunc != nil {
		return c.ERC20BalanceOfFunc(ctx, tokenAddress, accountAddress)
	}

	return nil, errors.New("not implemented")
}

func (c *MockEthClient) GetSignedTransferTokenTx(ctx context.Context, recipient common.Address, amount *big.Int) (*ethtypes.Transaction, error) {
	if c.GetSignedTransferTokenTxFunc != nil {
		return c.GetSignedTransferTokenTxFunc(ctx, recipient, amount)
	}

	return nil, errors.New("not implemented")
}

func (c *MockEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	if c.SendTransactionFunc != nil {
		return c.SendTransactionFunc(ctx, tx)
	}

	return nil
}

var _ eth.EthClient = (*MockEthClient)(nil)
