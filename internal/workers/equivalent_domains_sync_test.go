package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/mock"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func runUntilDone(t *testing.T, ctx context.Context, w Worker) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestEquivalentDomainsSync_SyncsEveryAccount(t *testing.T) {
	vault := mock.NewMockVaultService(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	vault.EXPECT().AccountIDs(gomock.Any()).Return([]string{"a", "b", "c"}, nil)
	gomock.InOrder(
		vault.EXPECT().SyncEquivalentDomains(gomock.Any(), "a").Return(nil),
		// one failing account does not stop the run
		vault.EXPECT().SyncEquivalentDomains(gomock.Any(), "b").Return(errors.New("upstream down")),
		vault.EXPECT().SyncEquivalentDomains(gomock.Any(), "c").DoAndReturn(func(context.Context, string) error {
			cancel()
			return nil
		}),
	)

	runUntilDone(t, ctx, NewEquivalentDomainsSync(vault, time.Hour, logger.Nop()))
}

func TestEquivalentDomainsSync_RepeatsOnTick(t *testing.T) {
	vault := mock.NewMockVaultService(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	runs := 0
	vault.EXPECT().AccountIDs(gomock.Any()).Times(3).DoAndReturn(func(context.Context) ([]string, error) {
		runs++
		if runs == 3 {
			cancel()
		}
		return nil, nil
	})

	runUntilDone(t, ctx, NewEquivalentDomainsSync(vault, time.Millisecond, logger.Nop()))
	assert.Equal(t, 3, runs)
}

func TestEquivalentDomainsSync_DisabledSkipsRemainingAccounts(t *testing.T) {
	vault := mock.NewMockVaultService(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	vault.EXPECT().AccountIDs(gomock.Any()).Return([]string{"a", "b"}, nil)
	vault.EXPECT().SyncEquivalentDomains(gomock.Any(), "a").DoAndReturn(func(context.Context, string) error {
		cancel()
		return service.ErrSyncDisabled
	})

	runUntilDone(t, ctx, NewEquivalentDomainsSync(vault, time.Hour, logger.Nop()))
}

func TestEquivalentDomainsSync_ListFailure(t *testing.T) {
	vault := mock.NewMockVaultService(gomock.NewController(t))
	ctx, cancel := context.WithCancel(context.Background())

	vault.EXPECT().AccountIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		cancel()
		return nil, errors.New("db down")
	})

	runUntilDone(t, ctx, NewEquivalentDomainsSync(vault, time.Hour, logger.Nop()))
}
