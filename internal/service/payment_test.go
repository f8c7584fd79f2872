package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	evtpmt "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/payment"
	evtmocks "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/payment/mocks"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
	repomocks "github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/mocks"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service/gateway"
	gwmocks "github.com/nhnacademy-be11-1/chaekmate-core/internal/service/gateway/mocks"
	svcmocks "github.com/nhnacademy-be11-1/chaekmate-core/internal/service/mocks"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// txManagerStub 测试里不需要真事务，直接执行
type txManagerStub struct{}

func (txManagerStub) Transaction(ctx context.Context,
	fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestPaymentService_Cancel(t *testing.T) {
	paidAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.PaymentRepository,
			repository.DeliveryPolicyRepository, service.OrderService,
			*gateway.Registry, evtpmt.Producer)

		req domain.PaymentCancelRequest

		wantRes domain.PaymentCancelResult
		wantErr error
	}{
		{
			name: "部分取消，补收运费",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, service.OrderService,
				*gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-1").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-1",
						PaymentKey:  "txn-1",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 30000,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				// 累计取消是毛额 10000，实际打款 7000（扣了运费）
				repo.EXPECT().UpdateOnCancel(gomock.Any(), domain.Payment{
					ID:                  1,
					OrderNo:             "ord-1",
					PaymentKey:          "txn-1",
					Method:              domain.PaymentMethodWechat,
					TotalAmount:         30000,
					CancelAmount:        10000,
					DeliveryFeeAdjusted: true,
					Status:              domain.PaymentStatusPartiallyCanceled,
					PaidAt:              paidAt,
				}, domain.PaymentHistory{
					PaymentID: 1,
					Type:      domain.PaymentHistoryTypePartiallyCanceled,
					Amount:    7000,
					Reason:    "不想要了",
				}).Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-1").
					Return(domain.Order{
						OrderNo: "ord-1",
						Books: []domain.OrderedBook{
							{ID: 11, TotalPrice: 10000},
							{ID: 12, TotalPrice: 20000},
						},
					}, nil)
				orderSvc.EXPECT().ApplyOrderCancel(gomock.Any(),
					domain.PaymentCancelResult{
						OrderNo:        "ord-1",
						OrderedBookIDs: []int64{11},
						RefundCash:     7000,
					}, "不想要了").Return(nil)

				policyRepo := repomocks.NewMockDeliveryPolicyRepository(ctrl)
				policyRepo.EXPECT().FindEffectiveAt(gomock.Any(), paidAt).
					Return(domain.DeliveryPolicy{
						FreeAmount: 30000,
						Fee:        3000,
					}, nil)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				provider.EXPECT().Cancel(gomock.Any(), gateway.CancelRequest{
					OrderNo:    "ord-1",
					PaymentKey: "txn-1",
					TotalCash:  30000,
					CancelCash: 7000,
					Reason:     "不想要了",
				}).Return(gateway.CancelResult{
					CanceledCash: 7000,
				}, nil)

				// 部分取消的事件也要带部分取消的状态
				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProducePaymentCanceled(gomock.Any(),
					evtpmt.PaymentEvent{
						OrderNo: "ord-1",
						Amount:  7000,
						Status:  domain.PaymentStatusPartiallyCanceled.AsUint8(),
						Reason:  "不想要了",
					}).Return(nil)
				return repo, policyRepo, orderSvc,
					gateway.NewRegistry(provider), producer
			},
			req: domain.PaymentCancelRequest{
				OrderNo:        "ord-1",
				Reason:         "不想要了",
				OrderedBookIDs: []int64{11},
			},
			wantRes: domain.PaymentCancelResult{
				OrderNo:        "ord-1",
				OrderedBookIDs: []int64{11},
				RefundCash:     7000,
			},
		},
		{
			name: "剩余刚好是运费，整笔强制退掉",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, service.OrderService,
				*gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-2").
					Return(domain.Payment{
						ID:          2,
						OrderNo:     "ord-2",
						PaymentKey:  "txn-2",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 30000,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				repo.EXPECT().UpdateOnCancel(gomock.Any(), domain.Payment{
					ID:           2,
					OrderNo:      "ord-2",
					PaymentKey:   "txn-2",
					Method:       domain.PaymentMethodWechat,
					TotalAmount:  30000,
					CancelAmount: 30000,
					Status:       domain.PaymentStatusCanceled,
					PaidAt:       paidAt,
				}, domain.PaymentHistory{
					PaymentID: 2,
					Type:      domain.PaymentHistoryTypeCanceled,
					Amount:    30000,
					Reason:    "不想要了",
				}).Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-2").
					Return(domain.Order{
						OrderNo: "ord-2",
						Books: []domain.OrderedBook{
							{ID: 21, TotalPrice: 27000},
							{ID: 22, TotalPrice: 3000},
						},
					}, nil)
				orderSvc.EXPECT().ApplyOrderCancel(gomock.Any(),
					domain.PaymentCancelResult{
						OrderNo:        "ord-2",
						OrderedBookIDs: []int64{21},
						RefundCash:     30000,
						Full:           true,
					}, "不想要了").Return(nil)

				policyRepo := repomocks.NewMockDeliveryPolicyRepository(ctrl)
				policyRepo.EXPECT().FindEffectiveAt(gomock.Any(), paidAt).
					Return(domain.DeliveryPolicy{
						FreeAmount: 30000,
						Fee:        3000,
					}, nil)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				// 整笔退：给第三方的是支付上剩余的全部，不只是这一批
				provider.EXPECT().Cancel(gomock.Any(), gateway.CancelRequest{
					OrderNo:    "ord-2",
					PaymentKey: "txn-2",
					TotalCash:  30000,
					CancelCash: 30000,
					Reason:     "不想要了",
				}).Return(gateway.CancelResult{
					CanceledCash: 30000,
				}, nil)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProducePaymentCanceled(gomock.Any(),
					evtpmt.PaymentEvent{
						OrderNo: "ord-2",
						Amount:  30000,
						Status:  domain.PaymentStatusCanceled.AsUint8(),
						Reason:  "不想要了",
					}).Return(nil)
				return repo, policyRepo, orderSvc,
					gateway.NewRegistry(provider), producer
			},
			req: domain.PaymentCancelRequest{
				OrderNo:        "ord-2",
				Reason:         "不想要了",
				OrderedBookIDs: []int64{21},
			},
			wantRes: domain.PaymentCancelResult{
				OrderNo:        "ord-2",
				OrderedBookIDs: []int64{21},
				RefundCash:     30000,
				Full:           true,
			},
		},
		{
			// 整笔退完的支付是终态，再取消就是重复退款
			name: "已取消的支付拒绝再取消",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, service.OrderService,
				*gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-3").
					Return(domain.Payment{
						ID:           3,
						OrderNo:      "ord-3",
						PaymentKey:   "txn-3",
						Method:       domain.PaymentMethodWechat,
						TotalAmount:  30000,
						CancelAmount: 30000,
						Status:       domain.PaymentStatusCanceled,
						PaidAt:       paidAt,
					}, nil)
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				return repo,
					repomocks.NewMockDeliveryPolicyRepository(ctrl),
					svcmocks.NewMockOrderService(ctrl),
					gateway.NewRegistry(provider),
					evtmocks.NewMockProducer(ctrl)
			},
			req: domain.PaymentCancelRequest{
				OrderNo:        "ord-3",
				Reason:         "不想要了",
				OrderedBookIDs: []int64{31},
			},
			wantErr: service.ErrInvalidPaymentStatus,
		},
		{
			// 同一行提交第二次，必须在动钱之前被挡下来
			name: "重复提交已取消的订单行",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, service.OrderService,
				*gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-4").
					Return(domain.Payment{
						ID:                  4,
						OrderNo:             "ord-4",
						PaymentKey:          "txn-4",
						Method:              domain.PaymentMethodWechat,
						TotalAmount:         30000,
						CancelAmount:        10000,
						DeliveryFeeAdjusted: true,
						Status:              domain.PaymentStatusPartiallyCanceled,
						PaidAt:              paidAt,
					}, nil)
				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-4").
					Return(domain.Order{
						OrderNo: "ord-4",
						Books: []domain.OrderedBook{
							{ID: 41, TotalPrice: 10000,
								Status: domain.OrderedBookStatusCanceled},
							{ID: 42, TotalPrice: 20000},
						},
					}, nil)
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				return repo,
					repomocks.NewMockDeliveryPolicyRepository(ctrl),
					orderSvc,
					gateway.NewRegistry(provider),
					evtmocks.NewMockProducer(ctrl)
			},
			req: domain.PaymentCancelRequest{
				OrderNo:        "ord-4",
				Reason:         "不想要了",
				OrderedBookIDs: []int64{41},
			},
			wantErr: service.ErrOrderedBookFinished,
		},
		{
			name: "支付记录不存在",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, service.OrderService,
				*gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-404").
					Return(domain.Payment{}, repository.ErrPaymentNotFound)
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				return repo,
					repomocks.NewMockDeliveryPolicyRepository(ctrl),
					svcmocks.NewMockOrderService(ctrl),
					gateway.NewRegistry(provider),
					evtmocks.NewMockProducer(ctrl)
			},
			req: domain.PaymentCancelRequest{
				OrderNo:        "ord-404",
				OrderedBookIDs: []int64{1},
			},
			wantErr: repository.ErrPaymentNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, policyRepo, orderSvc, registry, producer := tc.mock(ctrl)
			svc := service.NewPaymentService(repo, policyRepo,
				repomocks.NewMockMemberRepository(ctrl),
				orderSvc, registry, producer,
				txManagerStub{}, logger.NewNopLogger())
			res, err := svc.Cancel(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestPaymentService_ApproveRefund(t *testing.T) {
	paidAt := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	delivered := time.Now().AddDate(0, 0, -3)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.PaymentRepository,
			repository.DeliveryPolicyRepository, repository.MemberRepository,
			service.OrderService, *gateway.Registry, evtpmt.Producer)

		req domain.RefundRequest

		wantRes domain.RefundResult
		wantErr error
	}{
		{
			name: "会员退款全部折成积分，不碰第三方",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, repository.MemberRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-m").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-m",
						PaymentKey:  "txn-m",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 10000,
						PointUsed:   500,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				// 支付上记的是毛额：现金 10000 归现金、积分 500 归积分，
				// 会员拿到手的 10500 积分只体现在流水和余额上
				repo.EXPECT().UpdateOnCancel(gomock.Any(), domain.Payment{
					ID:           1,
					OrderNo:      "ord-m",
					PaymentKey:   "txn-m",
					Method:       domain.PaymentMethodWechat,
					TotalAmount:  10000,
					PointUsed:    500,
					CancelAmount: 10000,
					CancelPoint:  500,
					Status:       domain.PaymentStatusCanceled,
					PaidAt:       paidAt,
				}, domain.PaymentHistory{
					PaymentID: 1,
					Type:      domain.PaymentHistoryTypeCanceled,
					Amount:    10500,
					Reason:    "商品破损",
				}).Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-m").
					Return(domain.Order{
						OrderNo:  "ord-m",
						MemberID: 7,
						Books: []domain.OrderedBook{
							{
								ID:          31,
								TotalPrice:  10000,
								PointUsed:   500,
								Status:      domain.OrderedBookStatusReturnRequested,
								DeliveredAt: &delivered,
							},
						},
					}, nil)
				orderSvc.EXPECT().ApplyOrderReturn(gomock.Any(), "ord-m",
					[]int64{31}).Return(nil)

				memberRepo := repomocks.NewMockMemberRepository(ctrl)
				memberRepo.EXPECT().IncrPoint(gomock.Any(), int64(7), int64(10500)).
					Return(nil)

				// 会员分支绝对不能调第三方的退款
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRefundApproved(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo,
					repomocks.NewMockDeliveryPolicyRepository(ctrl),
					memberRepo, orderSvc,
					gateway.NewRegistry(provider), producer
			},
			req: domain.RefundRequest{
				OrderNo:        "ord-m",
				Reason:         domain.RefundReasonDefect,
				OrderedBookIDs: []int64{31},
			},
			wantRes: domain.RefundResult{
				OrderNo:     "ord-m",
				RefundPoint: 10500,
				Full:        true,
			},
		},
		{
			name: "非会员走第三方退现金，不碰积分",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, repository.MemberRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-g").
					Return(domain.Payment{
						ID:          2,
						OrderNo:     "ord-g",
						PaymentKey:  "txn-g",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 10000,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				// 取消和退款两条入口的累计口径一致：毛额 10000，
				// 扣掉手续费实际打款 7000
				repo.EXPECT().UpdateOnCancel(gomock.Any(), domain.Payment{
					ID:           2,
					OrderNo:      "ord-g",
					PaymentKey:   "txn-g",
					Method:       domain.PaymentMethodWechat,
					TotalAmount:  10000,
					CancelAmount: 10000,
					Status:       domain.PaymentStatusCanceled,
					PaidAt:       paidAt,
				}, domain.PaymentHistory{
					PaymentID: 2,
					Type:      domain.PaymentHistoryTypeCanceled,
					Amount:    7000,
					Reason:    "单纯变心",
				}).Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-g").
					Return(domain.Order{
						OrderNo: "ord-g",
						Books: []domain.OrderedBook{
							{
								ID:          41,
								TotalPrice:  10000,
								Status:      domain.OrderedBookStatusReturnRequested,
								DeliveredAt: &delivered,
							},
						},
					}, nil)
				orderSvc.EXPECT().ApplyOrderReturn(gomock.Any(), "ord-g",
					[]int64{41}).Return(nil)

				// 买家责任按"现在"的政策收退货费
				policyRepo := repomocks.NewMockDeliveryPolicyRepository(ctrl)
				policyRepo.EXPECT().FindEffectiveAt(gomock.Any(), gomock.Any()).
					Return(domain.DeliveryPolicy{
						FreeAmount: 30000,
						Fee:        3000,
					}, nil)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				provider.EXPECT().Cancel(gomock.Any(), gateway.CancelRequest{
					OrderNo:    "ord-g",
					PaymentKey: "txn-g",
					TotalCash:  10000,
					CancelCash: 7000,
					Reason:     "单纯变心",
				}).Return(gateway.CancelResult{
					CanceledCash: 7000,
				}, nil)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProduceRefundApproved(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo, policyRepo,
					repomocks.NewMockMemberRepository(ctrl),
					orderSvc, gateway.NewRegistry(provider), producer
			},
			req: domain.RefundRequest{
				OrderNo:        "ord-g",
				Reason:         domain.RefundReasonChangeOfMind,
				OrderedBookIDs: []int64{41},
			},
			wantRes: domain.RefundResult{
				OrderNo:    "ord-g",
				RefundCash: 7000,
				Fee:        3000,
				Full:       true,
			},
		},
		{
			// 没走过申请的行不能直接批
			name: "订单行不在退货申请中",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				repository.DeliveryPolicyRepository, repository.MemberRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNoForUpdate(gomock.Any(), "ord-d").
					Return(domain.Payment{
						ID:          3,
						OrderNo:     "ord-d",
						PaymentKey:  "txn-d",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 10000,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-d").
					Return(domain.Order{
						OrderNo: "ord-d",
						Books: []domain.OrderedBook{
							{
								ID:          51,
								TotalPrice:  10000,
								Status:      domain.OrderedBookStatusDelivered,
								DeliveredAt: &delivered,
							},
						},
					}, nil)
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				return repo,
					repomocks.NewMockDeliveryPolicyRepository(ctrl),
					repomocks.NewMockMemberRepository(ctrl),
					orderSvc, gateway.NewRegistry(provider),
					evtmocks.NewMockProducer(ctrl)
			},
			req: domain.RefundRequest{
				OrderNo:        "ord-d",
				Reason:         domain.RefundReasonChangeOfMind,
				OrderedBookIDs: []int64{51},
			},
			wantErr: service.ErrBookNotReturnRequested,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, policyRepo, memberRepo, orderSvc, registry, producer := tc.mock(ctrl)
			svc := service.NewPaymentService(repo, policyRepo, memberRepo,
				orderSvc, registry, producer,
				txManagerStub{}, logger.NewNopLogger())
			res, err := svc.ApproveRefund(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestPaymentService_RequestRefund(t *testing.T) {
	delivered := time.Now().AddDate(0, 0, -12)

	t.Run("买家责任超过10天直接拒绝", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderSvc := svcmocks.NewMockOrderService(ctrl)
		orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-1").
			Return(domain.Order{
				OrderNo: "ord-1",
				Books: []domain.OrderedBook{
					{ID: 11, TotalPrice: 10000, DeliveredAt: &delivered},
				},
			}, nil)
		provider := gwmocks.NewMockProvider(ctrl)
		provider.EXPECT().MethodType().Return(domain.PaymentMethodWechat)
		svc := service.NewPaymentService(
			repomocks.NewMockPaymentRepository(ctrl),
			repomocks.NewMockDeliveryPolicyRepository(ctrl),
			repomocks.NewMockMemberRepository(ctrl),
			orderSvc, gateway.NewRegistry(provider),
			evtmocks.NewMockProducer(ctrl),
			txManagerStub{}, logger.NewNopLogger())
		_, err := svc.RequestRefund(context.Background(), domain.RefundRequest{
			OrderNo:        "ord-1",
			Reason:         domain.RefundReasonChangeOfMind,
			OrderedBookIDs: []int64{11},
		})
		assert.ErrorIs(t, err, domain.ErrReturnWindowExceeded)
	})

	t.Run("卖家责任30天内给出预估退款", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderSvc := svcmocks.NewMockOrderService(ctrl)
		orderSvc.EXPECT().GetOrder(gomock.Any(), "ord-2").
			Return(domain.Order{
				OrderNo: "ord-2",
				Books: []domain.OrderedBook{
					{ID: 21, TotalPrice: 10000, PointUsed: 500, DeliveredAt: &delivered},
					{ID: 22, TotalPrice: 5000},
				},
			}, nil)
		orderSvc.EXPECT().ApplyOrderReturnRequest(gomock.Any(), "ord-2",
			[]int64{21}, "商品破损").Return(nil)
		provider := gwmocks.NewMockProvider(ctrl)
		provider.EXPECT().MethodType().Return(domain.PaymentMethodWechat)
		svc := service.NewPaymentService(
			repomocks.NewMockPaymentRepository(ctrl),
			repomocks.NewMockDeliveryPolicyRepository(ctrl),
			repomocks.NewMockMemberRepository(ctrl),
			orderSvc, gateway.NewRegistry(provider),
			evtmocks.NewMockProducer(ctrl),
			txManagerStub{}, logger.NewNopLogger())
		res, err := svc.RequestRefund(context.Background(), domain.RefundRequest{
			OrderNo:        "ord-2",
			Reason:         domain.RefundReasonDefect,
			OrderedBookIDs: []int64{21},
		})
		assert.NoError(t, err)
		// 卖家责任零手续费，另一行还没退完，不算整单
		assert.Equal(t, domain.RefundResult{
			OrderNo:     "ord-2",
			RefundCash:  10000,
			RefundPoint: 500,
			Full:        false,
		}, res)
	})
}

func TestPaymentService_Approve(t *testing.T) {
	approvedAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)
	paidAt := time.Date(2024, 6, 2, 8, 55, 0, 0, time.UTC)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) (repository.PaymentRepository,
			service.OrderService, *gateway.Registry, evtpmt.Producer)

		wantRes domain.PaymentApproveResult
	}{
		{
			name: "审批通过",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNo(gomock.Any(), "ord-1").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-1",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 20000,
						Status:      domain.PaymentStatusReady,
						PaidAt:      paidAt,
					}, nil)
				repo.EXPECT().MarkApproved(gomock.Any(), domain.Payment{
					ID:          1,
					OrderNo:     "ord-1",
					PaymentKey:  "txn-1",
					Method:      domain.PaymentMethodWechat,
					TotalAmount: 20000,
					Status:      domain.PaymentStatusReady,
					PaidAt:      paidAt,
				}, domain.PaymentHistory{
					PaymentID: 1,
					Type:      domain.PaymentHistoryTypeApproved,
					Amount:    20000,
					Reason:    "支付成功",
				}).Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().VerifyStock(gomock.Any(), "ord-1").Return(nil)
				orderSvc.EXPECT().ApplyPaymentSuccess(gomock.Any(), "ord-1").
					Return(nil)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				provider.EXPECT().Approve(gomock.Any(), gateway.ApproveRequest{
					OrderNo: "ord-1",
					Amount:  20000,
				}).Return(gateway.ApproveResult{
					PaymentKey: "txn-1",
					Amount:     20000,
					ApprovedAt: approvedAt,
				}, nil)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProducePaymentApproved(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo, orderSvc, gateway.NewRegistry(provider), producer
			},
			wantRes: domain.PaymentApproveResult{
				Success:    true,
				ApprovedAt: approvedAt,
			},
		},
		{
			// 重复确认是幂等的：不查库存不调第三方，更不能再记流水
			name: "已支付成功的重复确认直接返回",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNo(gomock.Any(), "ord-1").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-1",
						PaymentKey:  "txn-1",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 20000,
						Status:      domain.PaymentStatusApproved,
						PaidAt:      paidAt,
					}, nil)
				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				return repo,
					svcmocks.NewMockOrderService(ctrl),
					gateway.NewRegistry(provider),
					evtmocks.NewMockProducer(ctrl)
			},
			wantRes: domain.PaymentApproveResult{
				Success: true,
			},
		},
		{
			name: "库存不足中止，审计记录独立落库",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNo(gomock.Any(), "ord-1").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-1",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 20000,
						Status:      domain.PaymentStatusReady,
						PaidAt:      paidAt,
					}, nil)
				repo.EXPECT().CreateAborted(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().VerifyStock(gomock.Any(), "ord-1").
					Return(service.ErrOutOfStock)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProducePaymentFailed(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo, orderSvc, gateway.NewRegistry(provider), producer
			},
			wantRes: domain.PaymentApproveResult{
				Success: false,
				Code:    "STOCK_SHORTAGE",
				Message: service.ErrOutOfStock.Error(),
			},
		},
		{
			name: "第三方没付成功中止，审计写失败也不影响返回",
			mock: func(ctrl *gomock.Controller) (repository.PaymentRepository,
				service.OrderService, *gateway.Registry, evtpmt.Producer) {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().GetByOrderNo(gomock.Any(), "ord-1").
					Return(domain.Payment{
						ID:          1,
						OrderNo:     "ord-1",
						Method:      domain.PaymentMethodWechat,
						TotalAmount: 20000,
						Status:      domain.PaymentStatusReady,
						PaidAt:      paidAt,
					}, nil)
				// 审计自己挂了只记日志，不许盖过真正的失败原因
				repo.EXPECT().CreateAborted(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("mock db 错误"))

				orderSvc := svcmocks.NewMockOrderService(ctrl)
				orderSvc.EXPECT().VerifyStock(gomock.Any(), "ord-1").Return(nil)

				provider := gwmocks.NewMockProvider(ctrl)
				provider.EXPECT().MethodType().
					Return(domain.PaymentMethodWechat)
				provider.EXPECT().Approve(gomock.Any(), gomock.Any()).
					Return(gateway.ApproveResult{}, gateway.ErrNotPaid)

				producer := evtmocks.NewMockProducer(ctrl)
				producer.EXPECT().ProducePaymentFailed(gomock.Any(), gomock.Any()).
					Return(nil)
				return repo, orderSvc, gateway.NewRegistry(provider), producer
			},
			wantRes: domain.PaymentApproveResult{
				Success: false,
				Code:    "PG_NOT_PAID",
				Message: gateway.ErrNotPaid.Error(),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, orderSvc, registry, producer := tc.mock(ctrl)
			svc := service.NewPaymentService(repo,
				repomocks.NewMockDeliveryPolicyRepository(ctrl),
				repomocks.NewMockMemberRepository(ctrl),
				orderSvc, registry, producer,
				txManagerStub{}, logger.NewNopLogger())
			res, err := svc.Approve(context.Background(),
				domain.PaymentApproveRequest{OrderNo: "ord-1"})
			assert.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

// TestPaymentService_SyncPaymentStatus 过期没付的要转到终态，
// 下一轮扫描不能再捞出同一批
func TestPaymentService_SyncPaymentStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paidAt := time.Now().Add(-time.Hour)
	repo := repomocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().FindReadyBefore(gomock.Any(), 0, 100, gomock.Any()).
		Return([]domain.Payment{
			{
				ID:          1,
				OrderNo:     "ord-1",
				Method:      domain.PaymentMethodWechat,
				TotalAmount: 20000,
				Status:      domain.PaymentStatusReady,
				PaidAt:      paidAt,
			},
		}, nil)
	repo.EXPECT().GetByOrderNo(gomock.Any(), "ord-1").
		Return(domain.Payment{
			ID:          1,
			OrderNo:     "ord-1",
			Method:      domain.PaymentMethodWechat,
			TotalAmount: 20000,
			Status:      domain.PaymentStatusReady,
			PaidAt:      paidAt,
		}, nil)
	repo.EXPECT().CreateAborted(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	repo.EXPECT().MarkAborted(gomock.Any(), "ord-1").Return(nil)

	orderSvc := svcmocks.NewMockOrderService(ctrl)
	orderSvc.EXPECT().VerifyStock(gomock.Any(), "ord-1").Return(nil)

	provider := gwmocks.NewMockProvider(ctrl)
	provider.EXPECT().MethodType().Return(domain.PaymentMethodWechat)
	provider.EXPECT().Approve(gomock.Any(), gomock.Any()).
		Return(gateway.ApproveResult{}, gateway.ErrNotPaid)

	producer := evtmocks.NewMockProducer(ctrl)
	producer.EXPECT().ProducePaymentFailed(gomock.Any(), gomock.Any()).
		Return(nil)

	svc := service.NewPaymentService(repo,
		repomocks.NewMockDeliveryPolicyRepository(ctrl),
		repomocks.NewMockMemberRepository(ctrl),
		orderSvc, gateway.NewRegistry(provider), producer,
		txManagerStub{}, logger.NewNopLogger())
	err := svc.SyncPaymentStatus(context.Background())
	assert.NoError(t, err)
}
