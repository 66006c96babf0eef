package scheduler

import (
	"testing"

	"corporatepay/internal/adapter/http/handlers/mocks"
	"corporatepay/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduler_Start(t *testing.T) {
	t.Run("empty schedule disables the timer", func(t *testing.T) {
		s := New(nil, "", zerolog.Nop())
		require.NoError(t, s.Start())
		s.Stop()
	})

	t.Run("invalid schedule rejected", func(t *testing.T) {
		s := New(nil, "every full moon", zerolog.Nop())
		assert.Error(t, s.Start())
	})

	t.Run("valid schedule starts and stops", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		scan := mocks.NewMockIBreachScanUseCase(ctrl)

		s := New(scan, "0 * * * *", zerolog.Nop())
		require.NoError(t, s.Start())
		s.Stop()
	})
}

func TestScheduler_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	scan := mocks.NewMockIBreachScanUseCase(ctrl)
	scan.EXPECT().Scan(gomock.Any()).Return(usecase.ScanResult{EntitiesScanned: 3}, nil)

	s := New(scan, "0 * * * *", zerolog.Nop())
	s.run()
}
