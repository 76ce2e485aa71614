package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/creator-insights-api/infrastructure/repository/mocks"
	"github.com/vfg2006/creator-insights-api/internal/domain"
	reportingmocks "github.com/vfg2006/creator-insights-api/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func newReportRequest(accountID, startDate, endDate string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/accounts/"+accountID+"/reports?start_date="+startDate+"&end_date="+endDate, nil)
	params := httprouter.Params{{Key: "id", Value: accountID}}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, params))
}

func TestGenerateReport(t *testing.T) {
	account := &domain.TrackedAccount{
		ID:       "ACC001",
		Username: "criadora",
	}

	t.Run("Período válido - relatório personalizado compilado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockCompiler := reportingmocks.NewMockCompiler(ctrl)

		mockAccountRepo.EXPECT().GetByID(domain.AccountID("ACC001")).Return(account, nil)

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		mockCompiler.EXPECT().
			Compile(account, domain.ReportKindCustom, start, end).
			Return(&domain.ReportRecord{ID: "REP001", IsReady: true}, nil)

		recorder := httptest.NewRecorder()
		GenerateReport(mockAccountRepo, mockCompiler)(recorder, newReportRequest("ACC001", "2025-06-01", "2025-06-10"))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Datas iguais - período rejeitado sem compilar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockCompiler := reportingmocks.NewMockCompiler(ctrl)

		recorder := httptest.NewRecorder()
		GenerateReport(mockAccountRepo, mockCompiler)(recorder, newReportRequest("ACC001", "2025-06-10", "2025-06-10"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Data final anterior à inicial - período rejeitado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockCompiler := reportingmocks.NewMockCompiler(ctrl)

		recorder := httptest.NewRecorder()
		GenerateReport(mockAccountRepo, mockCompiler)(recorder, newReportRequest("ACC001", "2025-06-10", "2025-06-01"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Período ausente - requisição rejeitada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccountRepo := mocks.NewMockTrackedAccountRepository(ctrl)
		mockCompiler := reportingmocks.NewMockCompiler(ctrl)

		recorder := httptest.NewRecorder()
		GenerateReport(mockAccountRepo, mockCompiler)(recorder, newReportRequest("ACC001", "", "2025-06-10"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
