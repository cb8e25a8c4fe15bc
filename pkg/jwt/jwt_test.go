package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investarise/summit-api/pkg/jwt"
)

const secret = "secreto-de-test"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ana@x.com", jwt.KindAccess, "summit-api", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, jwt.KindAccess, claims.Kind)
	assert.Equal(t, "summit-api", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate("otro-secreto", "u1", "ana@x.com", jwt.KindAccess, "summit-api", 60)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u1", "ana@x.com", jwt.KindAccess, "summit-api", -1)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err, "un token vencido no debe validar")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u1", "ana@x.com", jwt.KindAccess, "summit-api", 60)
	assert.Error(t, err)
}

func TestParse_BasuraNoValida(t *testing.T) {
	_, err := jwt.Parse(secret, "no.es.jwt")
	assert.Error(t, err)
}
