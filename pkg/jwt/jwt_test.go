package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/teerex-store/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "teerex-store-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sid)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, -time.Minute)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer, time.Hour)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_SinSessionID_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testIssuer, time.Hour)
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testSessionID, testIssuer, time.Hour)
	assert.Error(t, err)

	_, err = pkgjwt.Parse("", "cualquier.cosa.aqui")
	assert.Error(t, err)
}
