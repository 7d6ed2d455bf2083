package metaclient

import (
	"fmt"
	"time"
)

// MaxChunkDays é o limite de dias por janela aceito pelo endpoint de insights
// sem truncar resultados silenciosamente
const MaxChunkDays = 14

// TimeRange é um intervalo de datas inclusivo, em dias de calendário
type TimeRange struct {
	Since time.Time
	Until time.Time
}

// JSONString serializa o intervalo no formato {"since":"YYYY-MM-DD","until":"YYYY-MM-DD"}
// exigido pela API
func (tr TimeRange) JSONString() string {
	return fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}",
		tr.Since.Format(time.DateOnly), tr.Until.Format(time.DateOnly))
}

// Days retorna a quantidade de dias cobertos pelo intervalo, inclusive nas bordas
func (tr TimeRange) Days() int {
	since := truncateToDay(tr.Since)
	until := truncateToDay(tr.Until)
	return int(until.Sub(since).Hours()/24) + 1
}

// Extend devolve o intervalo estendido em `days` dias para cada lado
func (tr TimeRange) Extend(days int) TimeRange {
	return TimeRange{
		Since: tr.Since.AddDate(0, 0, -days),
		Until: tr.Until.AddDate(0, 0, days),
	}
}

// Contains verifica se a data (formato YYYY-MM-DD) cai dentro do intervalo
func (tr TimeRange) Contains(date string) bool {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return false
	}

	since := truncateToDay(tr.Since)
	until := truncateToDay(tr.Until)

	return !d.Before(since) && !d.After(until)
}

// SplitTimeRange divide um intervalo em janelas consecutivas de até maxDays
// dias, sem lacunas nem sobreposições, com a última janela cortada em Until.
// Intervalos dentro do limite voltam inalterados em uma única janela.
func SplitTimeRange(tr TimeRange, maxDays int) []TimeRange {
	if tr.Days() <= maxDays {
		return []TimeRange{tr}
	}

	var chunks []TimeRange
	chunkStart := truncateToDay(tr.Since)
	until := truncateToDay(tr.Until)

	for !chunkStart.After(until) {
		chunkEnd := chunkStart.AddDate(0, 0, maxDays-1)
		if chunkEnd.After(until) {
			chunkEnd = until
		}

		chunks = append(chunks, TimeRange{Since: chunkStart, Until: chunkEnd})
		chunkStart = chunkEnd.AddDate(0, 0, 1)
	}

	return chunks
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
