package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentic-eval/evalcore/config"
	"github.com/remiges-tech/rigel/etcd"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evald.json")
	content := `{"redis_addr":"localhost:6400","max_concurrent_tasks":4,"minio_use_ssl":true}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Could not write config file: %v", err)
	}

	var cfg struct {
		RedisAddr          string `json:"redis_addr"`
		MaxConcurrentTasks int    `json:"max_concurrent_tasks"`
		MinioUseSSL        bool   `json:"minio_use_ssl"`
	}
	if err := config.LoadConfigFromFile(path, &cfg); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.RedisAddr != "localhost:6400" {
		t.Errorf("Expected redis_addr localhost:6400, got %q", cfg.RedisAddr)
	}
	if cfg.MaxConcurrentTasks != 4 {
		t.Errorf("Expected max_concurrent_tasks 4, got %d", cfg.MaxConcurrentTasks)
	}
	if !cfg.MinioUseSSL {
		t.Errorf("Expected minio_use_ssl to be true")
	}
}

func TestLoadConfigFromFileRejectsEmptyPath(t *testing.T) {
	var cfg struct{}
	if err := config.LoadConfigFromFile("", &cfg); err == nil {
		t.Fatalf("Expected an error for an empty config path")
	}
}

func TestLoadConfigFromFileMissingFile(t *testing.T) {
	var cfg struct{}
	err := config.LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.json"), &cfg)
	if err == nil {
		t.Fatalf("Expected an error for a missing config file")
	}
}

func TestNewRigelClient(t *testing.T) {
	etcdEndpoints := "localhost:2379"
	rigelClient, err := config.NewRigelClient(etcdEndpoints)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rigelClient == nil {
		t.Fatalf("Expected rigelClient to be not nil")
	}

	etcdStorage, ok := rigelClient.Storage.(*etcd.EtcdStorage)
	if !ok {
		t.Fatalf("Expected Storage to be of type *etcd.EtcdStorage")
	}

	if len(etcdStorage.Client.Endpoints()) == 0 || etcdStorage.Client.Endpoints()[0] != etcdEndpoints {
		t.Fatalf("Expected etcdStorage.Client.Endpoints()[0] to be %v, got %v", etcdEndpoints, etcdStorage.Client.Endpoints()[0])
	}
}
