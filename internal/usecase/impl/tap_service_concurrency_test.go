package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tapgate/internal/domain/entity"
	"tapgate/internal/infra/persistence/memory"
	mockRepo "tapgate/internal/mocks/repository"
	mockService "tapgate/internal/mocks/service"
	"tapgate/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// createConcurrencyTapService wires the tap service against the in-memory
// ledger so concurrent bursts exercise the real read-decide-append path.
func createConcurrencyTapService(t *testing.T, identities []*entity.Identity) (*tapService, *memory.TapLedger) {
	devices := mockRepo.NewMockDeviceDirectory(t)
	identityDir := mockRepo.NewMockIdentityDirectory(t)
	publisher := mockService.NewMockEventPublisher(t)
	ledger := memory.NewTapLedger()

	device := testDevice()
	devices.EXPECT().
		FindActiveByCode(mock.Anything, device.Code).
		Return(device, nil)

	for _, identity := range identities {
		identityDir.EXPECT().
			FindActiveByCredential(mock.Anything, identity.Class, identity.CredentialUID).
			Return(identity, nil)
	}

	publisher.EXPECT().
		PublishTapAccepted(mock.Anything, mock.Anything).
		Return(nil).
		Maybe()

	service := &tapService{
		devices:       devices,
		identities:    identityDir,
		ledger:        ledger,
		publisher:     publisher,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		loc:           time.UTC,
		defaultWindow: 5 * time.Minute,
		locks:         newLockTable(),
		now:           time.Now,
	}

	return service, ledger
}

func TestTapService_ProcessTap_ConcurrentBurstAcceptsOne(t *testing.T) {
	student := testStudent()
	service, ledger := createConcurrencyTapService(t, []*entity.Identity{student})

	const workers = 16
	results := make([]*usecase.TapResult, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := service.ProcessTap(context.Background(), &usecase.TapRequest{
				DeviceCode:    "gate-01",
				CredentialUID: student.CredentialUID,
			})
			require.NoError(t, err)
			results[i] = result
		}()
	}
	wg.Wait()

	accepted := 0
	rejected := 0
	for _, result := range results {
		require.NotNil(t, result)
		if result.Accepted {
			accepted++
			assert.Equal(t, entity.DirectionIn, result.Direction)
		} else {
			rejected++
			assert.Positive(t, result.RemainingWait)
		}
	}

	assert.Equal(t, 1, accepted)
	assert.Equal(t, workers-1, rejected)
	assert.Equal(t, 1, ledger.Count(student.Ref()))
	assert.Equal(t, 0, service.locks.size())
}

func TestTapService_ProcessTap_DistinctIdentitiesProceedIndependently(t *testing.T) {
	students := make([]*entity.Identity, 8)
	for i := range students {
		student := testStudent()
		student.CredentialUID = student.ID.String()
		students[i] = student
	}
	service, ledger := createConcurrencyTapService(t, students)

	var wg sync.WaitGroup
	for _, student := range students {
		wg.Add(1)
		go func() {
			defer wg.Done()

			result, err := service.ProcessTap(context.Background(), &usecase.TapRequest{
				DeviceCode:    "gate-01",
				CredentialUID: student.CredentialUID,
			})
			require.NoError(t, err)
			assert.True(t, result.Accepted)
		}()
	}
	wg.Wait()

	// One identity's debounce never blocks another's first tap.
	for _, student := range students {
		assert.Equal(t, 1, ledger.Count(student.Ref()))
	}
}
