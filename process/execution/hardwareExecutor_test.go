package execution_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-safe-go/data/signer"
	"github.com/multiversx/mx-chain-safe-go/process"
	"github.com/multiversx/mx-chain-safe-go/process/execution"
	"github.com/multiversx/mx-chain-safe-go/testscommon/chainMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/executionMocks"
	"github.com/multiversx/mx-chain-safe-go/testscommon/processMocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callRecorder struct {
	mut   sync.Mutex
	calls []string
}

func (cr *callRecorder) add(call string) {
	cr.mut.Lock()
	cr.calls = append(cr.calls, call)
	cr.mut.Unlock()
}

func (cr *callRecorder) get() []string {
	cr.mut.Lock()
	defer cr.mut.Unlock()

	return append([]string{}, cr.calls...)
}

func createHardwareArgs(recorder *callRecorder, record *signer.Record) execution.ArgsHardwareExecutor {
	provider := &chainMocks.ChainProviderStub{
		PendingNonceAtCalled: func(ctx context.Context, account common.Address) (uint64, error) {
			recorder.add("nonce")
			return 3, nil
		},
	}

	return execution.ArgsHardwareExecutor{
		SignerRegistry: &processMocks.SignerRegistryStub{
			GetSignerCalled: func(address common.Address) (*signer.Record, error) {
				recorder.add("signer")
				return record, nil
			},
		},
		HardwareService: &processMocks.HardwareServiceStub{
			ExecuteTransactionCalled: func(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
				recorder.add("execute")
				return testTxHash, nil
			},
			DisconnectCalled: func() error {
				recorder.add("disconnect")
				return nil
			},
		},
		ChainProviders: &chainMocks.ChainProvidersHolderStub{
			ProviderForChainCalled: func(chainID string) (process.ChainProvider, error) {
				return provider, nil
			},
		},
		Encoder: &executionMocks.TransactionEncoderStub{},
	}
}

func createHardwareRecord() *signer.Record {
	return &signer.Record{
		Address:        testWallet,
		Type:           signer.TypeHardware,
		DerivationPath: "m/44'/60'/0'/0/0",
	}
}

func TestNewHardwareExecutor(t *testing.T) {
	t.Parallel()

	t.Run("nil signer registry should error", func(t *testing.T) {
		t.Parallel()

		args := createHardwareArgs(&callRecorder{}, createHardwareRecord())
		args.SignerRegistry = nil
		executor, err := execution.NewHardwareExecutor(args)
		assert.Nil(t, executor)
		assert.Equal(t, execution.ErrNilSignerRegistry, err)
	})
	t.Run("nil hardware service should error", func(t *testing.T) {
		t.Parallel()

		args := createHardwareArgs(&callRecorder{}, createHardwareRecord())
		args.HardwareService = nil
		_, err := execution.NewHardwareExecutor(args)
		assert.Equal(t, execution.ErrNilHardwareService, err)
	})
	t.Run("should work", func(t *testing.T) {
		t.Parallel()

		executor, err := execution.NewHardwareExecutor(createHardwareArgs(&callRecorder{}, createHardwareRecord()))
		assert.Nil(t, err)
		assert.False(t, check.IfNil(executor))
	})
}

func TestHardwareExecutor_ExecuteTransaction(t *testing.T) {
	t.Parallel()

	t.Run("missing derivation path should fail before touching the device", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		record := createHardwareRecord()
		record.DerivationPath = ""
		executor, _ := execution.NewHardwareExecutor(createHardwareArgs(recorder, record))

		artifact, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		assert.Nil(t, artifact)
		assert.True(t, errors.Is(err, process.ErrMissingDerivationPath))
		assert.Equal(t, []string{"signer"}, recorder.get())
	})
	t.Run("wrong signer type should fail before touching the device", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		record := createHardwareRecord()
		record.Type = signer.TypePrivateKey
		executor, _ := execution.NewHardwareExecutor(createHardwareArgs(recorder, record))

		_, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		assert.True(t, errors.Is(err, process.ErrWrongSignerType))
		assert.Equal(t, []string{"signer"}, recorder.get())
	})
	t.Run("registry failure should return signer unavailable", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		args := createHardwareArgs(recorder, nil)
		args.SignerRegistry = &processMocks.SignerRegistryStub{
			GetSignerCalled: func(address common.Address) (*signer.Record, error) {
				return nil, errors.New("unknown wallet")
			},
		}
		executor, _ := execution.NewHardwareExecutor(args)

		_, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		assert.True(t, errors.Is(err, process.ErrSignerUnavailable))
		assert.Empty(t, recorder.get())
	})
	t.Run("should follow the strict sequence", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		executor, _ := execution.NewHardwareExecutor(createHardwareArgs(recorder, createHardwareRecord()))

		artifact, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		require.Nil(t, err)
		assert.Equal(t, testTxHash, artifact.TxHash)
		assert.Equal(t, uint64(3), artifact.WalletNonce)
		assert.Equal(t, uint64(5), artifact.SafeNonce)
		assert.Equal(t, testWallet, artifact.WalletAddress)
		assert.Equal(t, []string{"signer", "execute", "nonce", "disconnect"}, recorder.get())
	})
	t.Run("device failure should still disconnect", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		expectedErr := errors.New("rejected on device")
		args := createHardwareArgs(recorder, createHardwareRecord())
		args.HardwareService = &processMocks.HardwareServiceStub{
			ExecuteTransactionCalled: func(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
				recorder.add("execute")
				assert.Equal(t, "m/44'/60'/0'/0/0", request.DerivationPath)
				assert.Equal(t, testSafe, request.To)
				return common.Hash{}, expectedErr
			},
			DisconnectCalled: func() error {
				recorder.add("disconnect")
				return nil
			},
		}
		executor, _ := execution.NewHardwareExecutor(args)

		artifact, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		assert.Nil(t, artifact)
		assert.Equal(t, expectedErr, err)
		assert.Equal(t, []string{"signer", "execute", "disconnect"}, recorder.get())
	})
	t.Run("disconnect failure after a device failure should keep the primary error", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		expectedErr := errors.New("rejected on device")
		args := createHardwareArgs(recorder, createHardwareRecord())
		args.HardwareService = &processMocks.HardwareServiceStub{
			ExecuteTransactionCalled: func(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
				return common.Hash{}, expectedErr
			},
			DisconnectCalled: func() error {
				return errors.New("usb error")
			},
		}
		executor, _ := execution.NewHardwareExecutor(args)

		_, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		assert.True(t, errors.Is(err, expectedErr))
		assert.True(t, errors.Is(err, process.ErrHardwareDisconnect))
	})
	t.Run("disconnect failure after success should return the artifact and the error", func(t *testing.T) {
		t.Parallel()

		recorder := &callRecorder{}
		args := createHardwareArgs(recorder, createHardwareRecord())
		args.HardwareService = &processMocks.HardwareServiceStub{
			ExecuteTransactionCalled: func(ctx context.Context, request *process.HardwareExecutionRequest) (common.Hash, error) {
				return testTxHash, nil
			},
			DisconnectCalled: func() error {
				return errors.New("usb error")
			},
		}
		executor, _ := execution.NewHardwareExecutor(args)

		artifact, err := executor.ExecuteTransaction(context.Background(), createExecutionRequest())
		require.NotNil(t, artifact)
		assert.Equal(t, testTxHash, artifact.TxHash)
		assert.True(t, errors.Is(err, process.ErrHardwareDisconnect))
	})
}
