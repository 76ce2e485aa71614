package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetentionCutoff(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("Janela de métricas - corte exatamente 90 dias atrás", func(t *testing.T) {
		cutoff := retentionCutoff(now, 90)
		assert.Equal(t, time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC), cutoff)
	})

	t.Run("Janela de relatórios - corte exatamente 180 dias atrás", func(t *testing.T) {
		cutoff := retentionCutoff(now, 180)
		assert.Equal(t, time.Date(2024, 12, 12, 12, 0, 0, 0, time.UTC), cutoff)
	})

	t.Run("Registro de 91 dias cai antes do corte, registro de 10 dias não", func(t *testing.T) {
		cutoff := retentionCutoff(now, 90)

		swept := now.AddDate(0, 0, -91)
		kept := now.AddDate(0, 0, -10)

		assert.True(t, swept.Before(cutoff))
		assert.False(t, kept.Before(cutoff))
	})
}
