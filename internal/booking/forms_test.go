package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceFormValidate(t *testing.T) {
	valid := ServiceForm{Name: "Corte", Description: "Corte masculino", Price: "50", Duration: "30"}
	assert.NoError(t, valid.Validate())

	for _, f := range []ServiceForm{
		{Description: "d", Price: "50", Duration: "30"},
		{Name: "Corte", Price: "50", Duration: "30"},
		{Name: "Corte", Description: "d", Duration: "30"},
		{Name: "Corte", Description: "d", Price: "50"},
	} {
		err := f.Validate()
		require.Error(t, err)
		assert.Equal(t, "Por favor, preencha todos os campos obrigatórios.", err.Error())
	}
}

func TestAppointmentFormValidate(t *testing.T) {
	f := AppointmentForm{ClientName: "  João  ", ServiceID: "2", Date: "2025-06-05", Time: "10:30"}
	require.NoError(t, f.Validate())
	assert.Equal(t, "João", f.ClientName, "name must be trimmed")

	blank := AppointmentForm{ClientName: "   ", ServiceID: "2", Date: "2025-06-05", Time: "10:30"}
	err := blank.Validate()
	require.Error(t, err)
	assert.Equal(t, "Por favor, informe o nome do cliente.", err.Error())

	noDate := AppointmentForm{ClientName: "João", ServiceID: "2", Time: "10:30"}
	err = noDate.Validate()
	require.Error(t, err)
	assert.Equal(t, "Por favor, preencha todos os campos obrigatórios.", err.Error())
}

func TestSanitizePrice(t *testing.T) {
	assert.Equal(t, "1234", SanitizePrice("R$ 1.234,00"))
	assert.Equal(t, "50", SanitizePrice("50"))
	assert.Equal(t, "199", SanitizePrice("199,90"))
	assert.Equal(t, "", SanitizePrice("R$ "))
}

func TestSanitizeMoney(t *testing.T) {
	assert.Equal(t, "1.234,00", SanitizeMoney("R$ 1.234,00"))
	assert.Equal(t, "150.50", SanitizeMoney("150.50"))
	assert.Equal(t, "", SanitizeMoney("abc"))
}
