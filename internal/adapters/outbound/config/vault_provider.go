package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider resolves configuration values from a HashiCorp Vault KV v2
// secret. Database credentials reach the app this way instead of through
// environment variables.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
}

// NewVaultProvider connects to the Vault server at addr using token and
// binds the provider to one secret under mountPath/secretPath.
func NewVaultProvider(addr, token, mountPath, secretPath string) (VaultProvider, error) {
	for name, value := range map[string]string{
		"VAULT_ADDR":        addr,
		"VAULT_TOKEN":       token,
		"VAULT_MOUNT_PATH":  mountPath,
		"VAULT_SECRET_PATH": secretPath,
	} {
		if value == "" {
			return VaultProvider{}, fmt.Errorf("%s is required", name)
		}
	}

	cfg := api.DefaultConfig()
	cfg.Address = addr

	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
	}, nil
}

// Get reads key from the bound secret. The whole secret is fetched on every
// call; symbiont only resolves config at startup.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return "", err
	}
	if secret == nil || secret.Data == nil {
		return "", fmt.Errorf("vault secret %s not found", vp.secretPath)
	}

	value, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret key %s is not a string", key)
	}

	return strValue, nil
}

var _ config.Provider = (*VaultProvider)(nil)

// InitVaultProvider initializes the VaultProvider and installs it as a
// global config source behind environment variables.
type InitVaultProvider struct {
	Server     string `config:"VAULT_ADDR"`
	Token      string `config:"VAULT_TOKEN"`
	MountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	SecretPath string `config:"VAULT_SECRET_PATH" default:"taskapp"`
}

// Initialize sets up the VaultProvider and registers it in a composite
// provider, with environment variables taking precedence.
func (ivp InitVaultProvider) Initialize(ctx context.Context) (context.Context, error) {
	vaultProvider, err := NewVaultProvider(ivp.Server, ivp.Token, ivp.MountPath, ivp.SecretPath)
	if err != nil {
		return ctx, fmt.Errorf("failed to initialize Vault provider: %w", err)
	}

	config.SetGlobalProvider(
		config.NewCompositeProvider(
			config.EnvVarProvider{},
			vaultProvider,
		),
	)

	return ctx, nil
}
