package gateway

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// VAPIDKeys is the application server key pair for web push
type VAPIDKeys struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func (k VAPIDKeys) complete() bool {
	return k.PublicKey != "" && k.PrivateKey != ""
}

// EnsureVAPIDKeys resolves the key pair: configured keys win, then the keys
// file, and otherwise a fresh pair is generated and saved to the keys file.
// A pair that cannot be saved is still returned.
func EnsureVAPIDKeys(cfg models.PushConfig) (VAPIDKeys, error) {
	configured := VAPIDKeys{PublicKey: cfg.VAPIDPublicKey, PrivateKey: cfg.VAPIDPrivateKey}
	if configured.complete() {
		return configured, nil
	}

	if cfg.VAPIDKeysFile != "" {
		keys, err := loadVAPIDKeys(cfg.VAPIDKeysFile)
		if err == nil && keys.complete() {
			return keys, nil
		}
		if err != nil && !os.IsNotExist(err) {
			logger.Warn("Ignoring unreadable VAPID keys file",
				logger.String("path", cfg.VAPIDKeysFile),
				logger.Err(err))
		}
	}

	privateKey, publicKey, err := webpush.GenerateVAPIDKeys()
	if err != nil {
		return VAPIDKeys{}, fmt.Errorf("failed to generate VAPID keys: %w", err)
	}
	keys := VAPIDKeys{PublicKey: publicKey, PrivateKey: privateKey}

	if cfg.VAPIDKeysFile == "" {
		logger.Warn("Generated ephemeral VAPID keys, push subscriptions will not survive a restart")
		return keys, nil
	}
	if err := saveVAPIDKeys(cfg.VAPIDKeysFile, keys); err != nil {
		logger.Error("Failed to save VAPID keys",
			logger.String("path", cfg.VAPIDKeysFile),
			logger.Err(err))
		return keys, nil
	}
	logger.Info("Generated VAPID keys", logger.String("path", cfg.VAPIDKeysFile))
	return keys, nil
}

func loadVAPIDKeys(path string) (VAPIDKeys, error) {
	var keys VAPIDKeys
	data, err := os.ReadFile(path)
	if err != nil {
		return keys, err
	}
	if err := json.Unmarshal(data, &keys); err != nil {
		return keys, err
	}
	return keys, nil
}

func saveVAPIDKeys(path string, keys VAPIDKeys) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
