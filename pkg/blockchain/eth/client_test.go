package eth

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/pkg/ethutil"
	"github.com/stretchr/testify/require"
)

const testWalletKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func Test_defaultEthClient_transactionOpts(t *testing.T) {
	key, err := ethutil.ParsePrivateKey(testWalletKey)
	require.NoError(t, err)

	recipient := common.HexToAddress("0x000000000000000000000000000000000000dEaD")
	legacyTx := ethtypes.NewTransaction(0, recipient, big.NewInt(0), 21000, big.NewInt(1), nil)
	dynamicTx := ethtypes.NewTx(&ethtypes.DynamicFeeTx{
		ChainID:   big.NewInt(8453),
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &recipient,
		Value:     big.NewInt(0),
	})

	client := NewEthClient(config.ChainConfigs{Chain: "base", ID: 8453, UseEip1559: true})
	opts := client.transactionOpts(key, common.Big0)
	_, err = opts.Signer(opts.From, dynamicTx)
	require.NoError(t, err)
	_, err = opts.Signer(opts.From, legacyTx)
	require.NoError(t, err)

	// Without EIP-1559 the legacy signer stays in place and refuses
	// dynamic-fee transactions.
	client = NewEthClient(config.ChainConfigs{Chain: "base", ID: 8453, UseEip1559: false})
	opts = client.transactionOpts(key, common.Big0)
	_, err = opts.Signer(opts.From, legacyTx)
	require.NoError(t, err)
	_, err = opts.Signer(opts.From, dynamicTx)
	require.Error(t, err)
}
