package ioc

import (
	"context"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service/gateway"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/spf13/viper"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
)

type WechatConfig struct {
	AppID     string `yaml:"appId"`
	MchID     string `yaml:"mchId"`
	SerialNo  string `yaml:"serialNo"`
	APIv3Key  string `yaml:"apiV3Key"`
	KeyPath   string `yaml:"keyPath"`
	NotifyURL string `yaml:"notifyUrl"`
}

func InitWechatConfig() WechatConfig {
	var cfg WechatConfig
	err := viper.UnmarshalKey("wechat", &cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func InitWechatClient(cfg WechatConfig) *core.Client {
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(cfg.KeyPath)
	if err != nil {
		panic(err)
	}
	client, err := core.NewClient(context.Background(),
		option.WithWechatPayAutoAuthCipher(cfg.MchID,
			cfg.SerialNo, mchPrivateKey, cfg.APIv3Key))
	if err != nil {
		panic(err)
	}
	return client
}

func InitWechatNativeService(client *core.Client) *native.NativeApiService {
	return &native.NativeApiService{
		Client: client,
	}
}

func InitWechatRefundService(client *core.Client) *refunddomestic.RefundsApiService {
	return &refunddomestic.RefundsApiService{
		Client: client,
	}
}

// InitGatewayRegistry 所有支付方式在这里注册
func InitGatewayRegistry(nativeSvc *native.NativeApiService,
	refundSvc *refunddomestic.RefundsApiService,
	cfg WechatConfig,
	l logger.LoggerV1) *gateway.Registry {
	return gateway.NewRegistry(
		gateway.NewWechatProvider(nativeSvc, refundSvc, l,
			cfg.AppID, cfg.MchID, cfg.NotifyURL),
		gateway.NewPointProvider(),
	)
}
