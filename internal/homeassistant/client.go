package homeassistant

import (
	"github.com/clambin/suez-monitor/internal/configuration"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"log/slog"
	"time"
)

// NewClient returns an MQTT client for the configured broker. The client reconnects automatically.
func NewClient(cfg configuration.MQTTConfiguration, logger *slog.Logger) mqtt.Client {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetUsername(cfg.Username).
		SetPassword(cfg.Password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetKeepAlive(60 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("mqtt connected", slog.String("broker", cfg.Broker))
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warn("mqtt connection lost", slog.Any("err", err))
		})
	return mqtt.NewClient(opts)
}
