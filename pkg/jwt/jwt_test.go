package jwt_test

import (
	"testing"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/pos-api/pkg/jwt"
)

const (
	testSecret = "super-secret-para-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testIssuer = "pos-api-test"
)

// Round-trip: el token generado en el login devuelve el mismo user y rol.
func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "admin", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	// Expiración -1 minuto: ya vencido al parsear.
	tok, err := pkgjwt.Generate(testSecret, testUserID, "cashier", testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "admin", testIssuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-distinto", tok)
	assert.Error(t, err, "firma con otro secret debe invalidar el token")
}

func TestParse_TokenManipulado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, "cashier", testIssuer, 60)
	require.NoError(t, err)

	// Alterar el último carácter de la firma.
	tampered := tok[:len(tok)-1]
	if tok[len(tok)-1] == 'A' {
		tampered += "B"
	} else {
		tampered += "A"
	}

	_, _, err = pkgjwt.Parse(testSecret, tampered)
	assert.Error(t, err, "token manipulado debe retornar error")
}

// Un token firmado con alg=none no debe pasar la verificación de método.
func TestParse_RechazaMetodoNone(t *testing.T) {
	claims := pkgjwt.Claims{UserID: testUserID, Role: "admin"}
	noneTok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testSecret, noneTok)
	assert.Error(t, err, "alg=none debe ser rechazado")
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, "admin", testIssuer, 60)
	assert.Error(t, err)
}
