package tlsutil

import (
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDevCertificates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteDevCertificates([]string{"localhost", "127.0.0.1"}, dir, 24*time.Hour))

	for _, name := range []string{CAFile, CAKeyFile, ServerFile, ServerKeyFile} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	raw, err := os.ReadFile(filepath.Join(dir, ServerFile))
	require.NoError(t, err)
	block, _ := pem.Decode(raw)
	require.NotNil(t, block)
	cert, err := x509.ParseCertificate(block.Bytes)
	require.NoError(t, err)
	assert.Equal(t, []string{"localhost"}, cert.DNSNames)
	require.Len(t, cert.IPAddresses, 1)
	assert.Equal(t, "127.0.0.1", cert.IPAddresses[0].String())

	creds, err := ServerCredentials(filepath.Join(dir, ServerFile), filepath.Join(dir, ServerKeyFile))
	require.NoError(t, err)
	assert.Equal(t, "tls", creds.Info().SecurityProtocol)

	clientCreds, err := ClientCredentials(filepath.Join(dir, CAFile))
	require.NoError(t, err)
	assert.NotNil(t, clientCreds)
}

func TestWriteDevCertificates_NoHosts(t *testing.T) {
	require.Error(t, WriteDevCertificates(nil, t.TempDir(), time.Hour))
}

func TestServerCredentials_MissingFiles(t *testing.T) {
	_, err := ServerCredentials("missing.pem", "missing-key.pem")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load server key pair")
}

func TestClientCredentials_BadCA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a certificate"), 0o600))

	_, err := ClientCredentials(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no certificates found")
}
