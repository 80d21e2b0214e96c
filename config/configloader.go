package config

import (
	"fmt"
	"strings"

	"github.com/remiges-tech/rigel"
	"github.com/remiges-tech/rigel/etcd"
)

func LoadConfigFromFile(filePath string, appConfig any) error {
	configSource, err := newFile(filePath)
	if err != nil {
		return fmt.Errorf("Failed to create File config source: %v", err)
	}

	err = Load(configSource, appConfig)
	if err != nil {
		return fmt.Errorf("Error loading config: %v", err)
	}

	return nil
}

func LoadConfigFromRigel(etcdEndpoints, schemaName string, schemaVersion int, configName string, appConfig any) error {
	// Create a new EtcdStorage instance
	etcdStorage, err := etcd.NewEtcdStorage(strings.Split(etcdEndpoints, ","))
	if err != nil {
		return fmt.Errorf("Failed to create EtcdStorage: %v", err)
	}

	// Create a new Rigel instance
	rigelClient := rigel.NewWithStorage(etcdStorage)

	configSource := &Rigel{
		Client:        rigelClient,
		SchemaName:    schemaName,
		SchemaVersion: schemaVersion,
		ConfigName:    configName,
	}

	err = Load(configSource, appConfig)
	if err != nil {
		return fmt.Errorf("Error loading config: %v", err)
	}

	return nil
}
