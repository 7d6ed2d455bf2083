package metaclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSplitTimeRange(t *testing.T) {
	tests := []struct {
		name     string
		tr       TimeRange
		expected []TimeRange
	}{
		{
			name: "Intervalo dentro do limite volta inalterado",
			tr:   TimeRange{Since: day("2024-01-01"), Until: day("2024-01-10")},
			expected: []TimeRange{
				{Since: day("2024-01-01"), Until: day("2024-01-10")},
			},
		},
		{
			name: "Intervalo exatamente no limite volta em uma janela",
			tr:   TimeRange{Since: day("2024-01-01"), Until: day("2024-01-14")},
			expected: []TimeRange{
				{Since: day("2024-01-01"), Until: day("2024-01-14")},
			},
		},
		{
			name: "Intervalo acima do limite divide em janelas consecutivas",
			tr:   TimeRange{Since: day("2024-01-01"), Until: day("2024-01-20")},
			expected: []TimeRange{
				{Since: day("2024-01-01"), Until: day("2024-01-14")},
				{Since: day("2024-01-15"), Until: day("2024-01-20")},
			},
		},
		{
			name: "Intervalo longo cruzando fim de mês",
			tr:   TimeRange{Since: day("2024-01-20"), Until: day("2024-03-05")},
			expected: []TimeRange{
				{Since: day("2024-01-20"), Until: day("2024-02-02")},
				{Since: day("2024-02-03"), Until: day("2024-02-16")},
				{Since: day("2024-02-17"), Until: day("2024-03-01")},
				{Since: day("2024-03-02"), Until: day("2024-03-05")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitTimeRange(tt.tr, MaxChunkDays)
			assert.Equal(t, tt.expected, chunks)
		})
	}
}

// TestSplitTimeRange_SemLacunasNemSobreposicoes verifica que as janelas
// concatenadas cobrem cada dia do intervalo exatamente uma vez
func TestSplitTimeRange_SemLacunasNemSobreposicoes(t *testing.T) {
	tr := TimeRange{Since: day("2024-01-01"), Until: day("2024-04-17")}

	chunks := SplitTimeRange(tr, MaxChunkDays)

	covered := make(map[string]int)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, chunk.Days(), MaxChunkDays)

		for d := chunk.Since; !d.After(chunk.Until); d = d.AddDate(0, 0, 1) {
			covered[d.Format(time.DateOnly)]++
		}
	}

	totalDays := tr.Days()
	assert.Len(t, covered, totalDays)
	for date, count := range covered {
		assert.Equalf(t, 1, count, "dia %s coberto %d vezes", date, count)
	}

	// As bordas do intervalo original são preservadas
	assert.Equal(t, tr.Since, chunks[0].Since)
	assert.Equal(t, tr.Until, chunks[len(chunks)-1].Until)
}

func TestTimeRange_JSONString(t *testing.T) {
	tr := TimeRange{Since: day("2024-01-01"), Until: day("2024-01-31")}
	assert.Equal(t, `{"since":"2024-01-01","until":"2024-01-31"}`, tr.JSONString())
}

func TestTimeRange_Extend(t *testing.T) {
	tr := TimeRange{Since: day("2024-03-10"), Until: day("2024-03-20")}

	extended := tr.Extend(1)

	assert.Equal(t, day("2024-03-09"), extended.Since)
	assert.Equal(t, day("2024-03-21"), extended.Until)
	// O intervalo original não muda
	assert.Equal(t, day("2024-03-10"), tr.Since)
}

func TestTimeRange_Contains(t *testing.T) {
	tr := TimeRange{Since: day("2024-03-10"), Until: day("2024-03-20")}

	assert.True(t, tr.Contains("2024-03-10"))
	assert.True(t, tr.Contains("2024-03-20"))
	assert.True(t, tr.Contains("2024-03-15"))
	assert.False(t, tr.Contains("2024-03-09"))
	assert.False(t, tr.Contains("2024-03-21"))
	assert.False(t, tr.Contains("data-invalida"))
}
