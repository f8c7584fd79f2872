package service

import (
	"testing"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"

	"github.com/stretchr/testify/assert"
)

func Test_adjustDeliveryFee(t *testing.T) {
	policy := domain.DeliveryPolicy{FreeAmount: 30000, Fee: 3000}

	testCases := []struct {
		name string

		pmt   domain.Payment
		gross domain.RefundAmount

		wantDecision feeDecision
		wantErr      error
	}{
		{
			name: "掉出包邮线，补收一次运费",
			pmt: domain.Payment{
				TotalAmount: 30000,
			},
			gross: domain.RefundAmount{Cash: 10000},
			wantDecision: feeDecision{
				refund:       domain.RefundAmount{Cash: 7000},
				markAdjusted: true,
			},
		},
		{
			name: "补收过一次就不会再收",
			pmt: domain.Payment{
				TotalAmount:         30000,
				CancelAmount:        10000,
				DeliveryFeeAdjusted: true,
			},
			gross: domain.RefundAmount{Cash: 10000},
			wantDecision: feeDecision{
				refund: domain.RefundAmount{Cash: 10000},
			},
		},
		{
			name: "全部取消，剩余的整笔退",
			pmt: domain.Payment{
				TotalAmount: 30000,
				PointUsed:   2000,
			},
			gross: domain.RefundAmount{Cash: 30000, Point: 2000},
			wantDecision: feeDecision{
				refund: domain.RefundAmount{Cash: 30000, Point: 2000},
				full:   true,
			},
		},
		{
			name: "只剩运费等于什么都不剩，强制整笔退",
			pmt: domain.Payment{
				TotalAmount: 30000,
			},
			gross: domain.RefundAmount{Cash: 27000},
			wantDecision: feeDecision{
				refund: domain.RefundAmount{Cash: 30000},
				full:   true,
			},
		},
		{
			name: "补收过运费之后剩个零头，跟着最后一批一起退",
			pmt: domain.Payment{
				TotalAmount:         30000,
				CancelAmount:        27500,
				DeliveryFeeAdjusted: true,
			},
			gross: domain.RefundAmount{Cash: 1500},
			wantDecision: feeDecision{
				refund: domain.RefundAmount{Cash: 2500},
				full:   true,
			},
		},
		{
			name: "还在包邮线以上，不动运费",
			pmt: domain.Payment{
				TotalAmount: 100000,
			},
			gross: domain.RefundAmount{Cash: 10000},
			wantDecision: feeDecision{
				refund: domain.RefundAmount{Cash: 10000},
			},
		},
		{
			name: "运费比这批可退的还多，不变量被破坏",
			pmt: domain.Payment{
				TotalAmount:  30000,
				CancelAmount: 27100,
			},
			gross:   domain.RefundAmount{Cash: 1000},
			wantErr: domain.ErrFeeExceedsRefund,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := adjustDeliveryFee(tc.pmt, policy, tc.gross)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantDecision, decision)
		})
	}
}

// Test_adjustDeliveryFee_oneShot 连续两次部分取消，运费只补收一次
func Test_adjustDeliveryFee_oneShot(t *testing.T) {
	policy := domain.DeliveryPolicy{FreeAmount: 30000, Fee: 3000}
	pmt := domain.Payment{TotalAmount: 30000}

	first, err := adjustDeliveryFee(pmt, policy,
		domain.RefundAmount{Cash: 10000})
	assert.NoError(t, err)
	assert.Equal(t, domain.RefundAmount{Cash: 7000}, first.refund)
	assert.True(t, first.markAdjusted)
	assert.False(t, first.full)

	// 第一次的结果落到支付上
	pmt.CancelAmount += 10000
	pmt.DeliveryFeeAdjusted = true

	second, err := adjustDeliveryFee(pmt, policy,
		domain.RefundAmount{Cash: 10000})
	assert.NoError(t, err)
	// 10000 > 3000，不触发强制整笔退；标已经打上，也不会再扣
	assert.Equal(t, domain.RefundAmount{Cash: 10000}, second.refund)
	assert.False(t, second.markAdjusted)
	assert.False(t, second.full)
}
