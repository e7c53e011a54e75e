package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenominacionValida(t *testing.T) {
	assert.True(t, DenominacionValida(TipoBillete, 100000))
	assert.True(t, DenominacionValida(TipoBillete, 2000))
	assert.True(t, DenominacionValida(TipoMoneda, 50))
	assert.True(t, DenominacionValida(TipoMoneda, 1000))

	// 1000 existe como moneda, no como billete
	assert.False(t, DenominacionValida(TipoBillete, 1000))
	assert.False(t, DenominacionValida(TipoMoneda, 2000))
	assert.False(t, DenominacionValida(TipoBillete, 3000))
	assert.False(t, DenominacionValida("cheque", 100000))
}
