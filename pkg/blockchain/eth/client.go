package eth

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/lenstown/backend/config"
	"github.com/lenstown/backend/contract/erc20"
	"github.com/lenstown/backend/pkg/ethutil"
	"github.com/lenstown/backend/pkg/xcontext"
)

const rpcTimeout = time.Second * 5

// A wrapper around eth.client so that we can mock in domain tests.
type EthClient interface {
	BalanceAt(ctx context.Context, from common.Address, block *big.Int) (*big.Int, error)
	ERC20BalanceOf(ctx context.Context, tokenAddress, accountAddress string) (*big.Int, error)
	GetSignedTransferTokenTx(ctx context.Context, recipient common.Address, amount *big.Int) (*ethtypes.Transaction, error)
	SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error
}

// Default implementation of ETH client. RPC endpoints are often unstable, so
// this client keeps every configured endpoint and dispatches each call to a
// healthy one.
type defaultEthClient struct {
	chain      string
	chainID    *big.Int
	useEip1559 bool

	mutex     sync.RWMutex
	rpcs      []string
	clients   []*ethclient.Client
	healthies []bool
}

func NewEthClient(cfg config.ChainConfigs) *defaultEthClient {
	return &defaultEthClient{
		chain:      cfg.Chain,
		chainID:    big.NewInt(cfg.ID),
		useEip1559: cfg.UseEip1559,
		rpcs:       cfg.Rpcs,
	}
}

func (c *defaultEthClient) updateRpcs(ctx context.Context) {
	clients := make([]*ethclient.Client, len(c.rpcs))
	healthies := make([]bool, len(c.rpcs))

	for i, rpc := range c.rpcs {
		client, err := ethclient.Dial(rpc)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot dial to rpc %s: %v", rpc, err)
			continue
		}

		checkCtx, cancel := context.WithTimeout(ctx, rpcTimeout)
		_, err = client.BlockNumber(checkCtx)
		cancel()
		if err != nil {
			xcontext.Logger(ctx).Warnf("Unhealthy rpc %s: %v", rpc, err)
			client.Close()
			continue
		}

		clients[i] = client
		healthies[i] = true
	}

	c.mutex.Lock()
	for _, old := range c.clients {
		if old != nil {
			old.Close()
		}
	}
	c.clients, c.healthies = clients, healthies
	c.mutex.Unlock()
}

func (c *defaultEthClient) getHealthyClient(ctx context.Context) *ethclient.Client {
	c.mutex.RLock()
	if c.clients == nil {
		c.mutex.RUnlock()
		c.updateRpcs(ctx)
		c.mutex.RLock()
	}

	defer c.mutex.RUnlock()

	// Shuffle indexes so that calls spread over different healthy rpcs.
	for _, i := range rand.Perm(len(c.clients)) {
		if c.healthies[i] {
			return c.clients[i]
		}
	}

	return nil
}

func (c *defaultEthClient) execute(
	ctx context.Context, f func(client *ethclient.Client) (any, error),
) (any, error) {
	client := c.getHealthyClient(ctx)
	if client == nil {
		return nil, fmt.Errorf("no healthy RPC for chain %s", c.chain)
	}

	return f(client)
}

func (c *defaultEthClient) BalanceAt(
	ctx context.Context, from common.Address, block *big.Int,
) (*big.Int, error) {
	balance, err := c.execute(ctx, func(client *ethclient.Client) (any, error) {
		return client.BalanceAt(ctx, from, block)
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEthClient) ERC20BalanceOf(
	ctx context.Context, tokenAddress, accountAddress string,
) (*big.Int, error) {
	balance, err := c.execute(ctx, func(client *ethclient.Client) (any, error) {
		tokenInstance, err := erc20.NewErc20(common.HexToAddress(tokenAddress), client)
		if err != nil {
			return nil, err
		}

		return tokenInstance.BalanceOf(nil, common.HexToAddress(accountAddress))
	})

	if err != nil {
		return nil, err
	}

	return balance.(*big.Int), nil
}

func (c *defaultEthClient) GetSignedTransferTokenTx(
	ctx context.Context, recipient common.Address, amount *big.Int,
) (*ethtypes.Transaction, error) {
	signedTx, err := c.execute(ctx, func(client *ethclient.Client) (any, error) {
		cfg := xcontext.Configs(ctx).Chain
		tokenInstance, err := erc20.NewErc20(common.HexToAddress(cfg.TokenAddress), client)
		if err != nil {
			return nil, err
		}

		walletPrivateKey, err := ethutil.ParsePrivateKey(cfg.WalletPrivateKey)
		if err != nil {
			return nil, err
		}

		return tokenInstance.Transfer(
			c.transactionOpts(walletPrivateKey, common.Big0),
			recipient,
			amount,
		)
	})
	if err != nil {
		return nil, err
	}

	return signedTx.(*ethtypes.Transaction), nil
}

func (c *defaultEthClient) SendTransaction(ctx context.Context, tx *ethtypes.Transaction) error {
	_, err := c.execute(ctx, func(client *ethclient.Client) (any, error) {
		return nil, client.SendTransaction(ctx, tx)
	})

	return err
}

func (c *defaultEthClient) transactionOpts(
	fromPrivateKey *ecdsa.PrivateKey, value *big.Int,
) *bind.TransactOpts {
	// Chains with EIP-1559 fees produce dynamic-fee transactions, which the
	// legacy EIP-155 signer rejects.
	signer := ethtypes.Signer(ethtypes.NewEIP155Signer(c.chainID))
	if c.useEip1559 {
		signer = ethtypes.LatestSignerForChainID(c.chainID)
	}

	return &bind.TransactOpts{
		From: crypto.PubkeyToAddress(fromPrivateKey.PublicKey),
		Signer: func(a common.Address, t *ethtypes.Transaction) (*ethtypes.Transaction, error) {
			return ethtypes.SignTx(t, signer, fromPrivateKey)
		},
		Value:  value,
		NoSend: true,
	}
}
