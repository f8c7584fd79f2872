package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	svcmocks "github.com/nhnacademy-be11-1/chaekmate-core/internal/service/mocks"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_Cancel(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) service.PaymentService

		reqBody string

		wantCode int
		wantRes  cancelResp
	}{
		{
			name: "取消成功",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().Cancel(gomock.Any(), domain.PaymentCancelRequest{
					OrderNo:        "ord-1",
					Reason:         "不想要了",
					OrderedBookIDs: []int64{11},
				}).Return(domain.PaymentCancelResult{
					OrderNo:        "ord-1",
					OrderedBookIDs: []int64{11},
					RefundCash:     7000,
				}, nil)
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-1",
	"reason": "不想要了",
	"orderedBookIds": [11]
}
`,
			wantCode: 200,
			wantRes: cancelResp{
				Msg: "OK",
				Data: domain.PaymentCancelResult{
					OrderNo:        "ord-1",
					OrderedBookIDs: []int64{11},
					RefundCash:     7000,
				},
			},
		},
		{
			name: "支付记录不存在",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().Cancel(gomock.Any(), gomock.Any()).
					Return(domain.PaymentCancelResult{}, service.ErrPaymentNotFound)
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-404",
	"orderedBookIds": [1]
}
`,
			wantCode: 200,
			wantRes: cancelResp{
				Code: 4,
				Msg:  "支付记录不存在",
			},
		},
		{
			name: "系统错误",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().Cancel(gomock.Any(), gomock.Any()).
					Return(domain.PaymentCancelResult{}, errors.New("mock db 错误"))
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-1",
	"orderedBookIds": [1]
}
`,
			wantCode: 200,
			wantRes: cancelResp{
				Code: 5,
				Msg:  "系统错误",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			h := NewPaymentHandler(tc.mock(ctrl), logger.NewNopLogger())
			h.RegisterRoutes(server)

			req, err := http.NewRequest(http.MethodPost,
				"/payments/cancel", bytes.NewBufferString(tc.reqBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			server.ServeHTTP(resp, req)

			assert.Equal(t, tc.wantCode, resp.Code)
			var res cancelResp
			err = json.NewDecoder(resp.Body).Decode(&res)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

type cancelResp struct {
	Code int                        `json:"code"`
	Msg  string                     `json:"msg"`
	Data domain.PaymentCancelResult `json:"data"`
}

func TestPaymentHandler_RequestRefund(t *testing.T) {
	testCases := []struct {
		name string

		mock func(ctrl *gomock.Controller) service.PaymentService

		reqBody string

		wantCode int
		wantRes  refundResp
	}{
		{
			name: "申请成功返回预估退款",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().RequestRefund(gomock.Any(), domain.RefundRequest{
					OrderNo:        "ord-1",
					Reason:         domain.RefundReasonChangeOfMind,
					Detail:         "收到不喜欢",
					OrderedBookIDs: []int64{11},
				}).Return(domain.RefundResult{
					OrderNo:    "ord-1",
					RefundCash: 7000,
					Fee:        3000,
				}, nil)
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-1",
	"reason": 1,
	"detail": "收到不喜欢",
	"orderedBookIds": [11]
}
`,
			wantCode: 200,
			wantRes: refundResp{
				Msg: "OK",
				Data: domain.RefundResult{
					OrderNo:    "ord-1",
					RefundCash: 7000,
					Fee:        3000,
				},
			},
		},
		{
			name: "超出退货期限",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().RequestRefund(gomock.Any(), gomock.Any()).
					Return(domain.RefundResult{}, domain.ErrReturnWindowExceeded)
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-1",
	"reason": 1,
	"orderedBookIds": [11]
}
`,
			wantCode: 200,
			wantRes: refundResp{
				Code: 4,
				Msg:  "超出退货期限",
			},
		},
		{
			name: "没发货不能退货",
			mock: func(ctrl *gomock.Controller) service.PaymentService {
				svc := svcmocks.NewMockPaymentService(ctrl)
				svc.EXPECT().RequestRefund(gomock.Any(), gomock.Any()).
					Return(domain.RefundResult{}, domain.ErrNotDelivered)
				return svc
			},
			reqBody: `
{
	"orderNo": "ord-1",
	"reason": 2,
	"orderedBookIds": [11]
}
`,
			wantCode: 200,
			wantRes: refundResp{
				Code: 4,
				Msg:  "商品还没发货，请走取消流程",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := gin.Default()
			h := NewPaymentHandler(tc.mock(ctrl), logger.NewNopLogger())
			h.RegisterRoutes(server)

			req, err := http.NewRequest(http.MethodPost,
				"/payments/refund", bytes.NewBufferString(tc.reqBody))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()

			server.ServeHTTP(resp, req)

			assert.Equal(t, tc.wantCode, resp.Code)
			var res refundResp
			err = json.NewDecoder(resp.Body).Decode(&res)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

type refundResp struct {
	Code int                 `json:"code"`
	Msg  string              `json:"msg"`
	Data domain.RefundResult `json:"data"`
}
