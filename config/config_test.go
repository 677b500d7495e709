package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const confTemplate = `aws:
  url: https://sqs.eu-central-1.amazonaws.com/000000000000/listq.fifo
  region: eu-central-1
  clientId: ${LISTQ_TEST_CLIENT_ID}
  clientSecret: ${LISTQ_TEST_CLIENT_SECRET}
logFile: /tmp/listq.log
clientsInputPath: ./input.txt
serverWaitTimeSeconds: 5
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("LISTQ_TEST_CLIENT_ID", "test-id")
	t.Setenv("LISTQ_TEST_CLIENT_SECRET", "test-secret")

	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte(confTemplate), 0600))

	conf, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "eu-central-1", conf.Aws.Region)
	require.Equal(t, "test-id", conf.Aws.ClientId)
	require.Equal(t, "test-secret", conf.Aws.ClientSecret)
	require.Equal(t, "/tmp/listq.log", conf.LogFilePath)
	require.Equal(t, "./input.txt", conf.ClientsInputPath)
	require.Equal(t, int64(5), conf.ServerWaitTimeSeconds)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigBadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aws: [not a mapping"), 0600))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
