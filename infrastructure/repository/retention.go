package repository

import "time"

// retentionCutoff calcula o instante limite da janela de retenção:
// registros estritamente anteriores a ele saem na varredura.
func retentionCutoff(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
