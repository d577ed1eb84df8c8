package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comedor-api/pkg/logger"
)

func TestNew_CampoServicioFijo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "comedor-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"service":"comedor-api"`,
		"cada línea lleva el nombre del servicio")
}

func TestComponent_Sublogger(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "comedor-api"})

	var buf bytes.Buffer
	zl := l.Component("motor").Zerolog().Output(&buf)
	zl.Info().Msg("derivación completada")

	out := buf.String()
	assert.Contains(t, out, `"component":"motor"`)
	assert.Contains(t, out, `"service":"comedor-api"`, "el sublogger hereda los campos fijos")
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Debug().Msg("no debería salir")
	zl.Info().Msg("sí sale")

	out := buf.String()
	assert.NotContains(t, out, "no debería salir")
	assert.Contains(t, out, "sí sale")
}
