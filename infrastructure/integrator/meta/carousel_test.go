package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
)

func TestResolveCardClicks_NiveisDeAtribuicao(t *testing.T) {
	// Carrossel de 3 cartões: sinal direto apenas para o cartão 0, sinal por
	// destino apenas para o cartão 1 e nenhum sinal para o cartão 2
	cardRows := []metadomain.CarouselInsightRow{
		{
			CarouselCardID: "0",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "40"},
			},
		},
	}

	destinationRows := []metadomain.DestinationInsightRow{
		{
			Actions: []metadomain.Action{
				{ActionType: "onsite_web_click", Value: "25"},
			},
		},
	}
	destinationRows[0].LinkURLAsset.WebsiteURL = "https://shop.example.com/?utm_content=card-b"

	adClicks := 90

	card0 := &domain.CarouselCard{UTMContent: "card-a"}
	card1 := &domain.CarouselCard{UTMContent: "card-b"}
	card2 := &domain.CarouselCard{UTMContent: ""}

	assert.Equal(t, 40, resolveCardClicks(card0, "0", 0, 3, adClicks, cardRows, destinationRows))
	assert.Equal(t, 25, resolveCardClicks(card1, "1", 1, 3, adClicks, cardRows, destinationRows))

	// Cartão 2 cai na estimativa: peso (3-2)/6 sobre 90 cliques
	assert.Equal(t, 15, resolveCardClicks(card2, "2", 2, 3, adClicks, cardRows, destinationRows))
}

// O breakdown só traz linhas para cartões com atividade: a linha do cartão 2
// não pode ser atribuída ao cartão 0 pela posição na lista
func TestResolveCardClicks_CasamentoPorIDDoCartao(t *testing.T) {
	cardRows := []metadomain.CarouselInsightRow{
		{
			CarouselCardID: "card-2",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "40"},
			},
		},
	}

	card0 := &domain.CarouselCard{}
	card2 := &domain.CarouselCard{}

	// Cartão 0 não casa com a única linha e cai na estimativa: peso 3/6 de 90
	assert.Equal(t, 45, resolveCardClicks(card0, "card-0", 0, 3, 90, cardRows, nil))

	// Cartão 2 recebe os cliques da própria linha
	assert.Equal(t, 40, resolveCardClicks(card2, "card-2", 2, 3, 90, cardRows, nil))
}

func TestResolveCardClicks_PosicaoQuandoSemIDs(t *testing.T) {
	// Upstream sem carousel_card_id: a posição na lista é o único critério
	cardRows := []metadomain.CarouselInsightRow{
		{Actions: []metadomain.Action{{ActionType: "link_click", Value: "12"}}},
	}

	card0 := &domain.CarouselCard{}
	card1 := &domain.CarouselCard{}

	assert.Equal(t, 12, resolveCardClicks(card0, "", 0, 2, 100, cardRows, nil))

	// Sem linha na posição 1, cartão 1 cai na estimativa: peso 1/3 de 100
	assert.Equal(t, 33, resolveCardClicks(card1, "", 1, 2, 100, cardRows, nil))
}

func TestResolveCardClicks_LinhaComZeroEAutoritativa(t *testing.T) {
	cardRows := []metadomain.CarouselInsightRow{
		{
			CarouselCardID: "card-0",
			Actions: []metadomain.Action{
				{ActionType: "link_click", Value: "0"},
			},
		},
		{
			// Linha sem ação de clique não é sinal e o cartão segue adiante
			CarouselCardID: "card-1",
			Actions: []metadomain.Action{
				{ActionType: "video_view", Value: "200"},
			},
		},
	}

	card0 := &domain.CarouselCard{}
	card1 := &domain.CarouselCard{}

	// O upstream reportou zero cliques para o cartão 0: zero é a resposta
	assert.Equal(t, 0, resolveCardClicks(card0, "card-0", 0, 2, 100, cardRows, nil))

	// Cartão 1 tem linha, mas sem ação de clique: estimativa 1/3 de 100
	assert.Equal(t, 33, resolveCardClicks(card1, "card-1", 1, 2, 100, cardRows, nil))
}

func TestResolveCardClicks_DestinoSomaMultiplasLinhas(t *testing.T) {
	destinationRows := make([]metadomain.DestinationInsightRow, 2)
	destinationRows[0].LinkURLAsset.WebsiteURL = "https://a.example.com/?utm_content=promo"
	destinationRows[0].Actions = []metadomain.Action{{ActionType: "link_click", Value: "10"}}
	destinationRows[1].LinkURLAsset.WebsiteURL = "https://b.example.com/?utm_content=promo"
	destinationRows[1].Actions = []metadomain.Action{{ActionType: "link_click", Value: "7"}}

	card := &domain.CarouselCard{UTMContent: "promo"}

	assert.Equal(t, 17, resolveCardClicks(card, "", 0, 2, 100, nil, destinationRows))
}

// TestTriangularShare_Conservacao verifica que a soma das estimativas fica a
// no máximo N-1 cliques do total do anúncio
func TestTriangularShare_Conservacao(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		adClicks int
	}{
		{name: "3 cartões, 90 cliques", total: 3, adClicks: 90},
		{name: "3 cartões, 100 cliques", total: 3, adClicks: 100},
		{name: "5 cartões, 17 cliques", total: 5, adClicks: 17},
		{name: "10 cartões, 1 clique", total: 10, adClicks: 1},
		{name: "2 cartões, 999 cliques", total: 2, adClicks: 999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := 0
			previous := -1
			for i := 0; i < tt.total; i++ {
				share := triangularShare(i, tt.total, tt.adClicks)
				sum += share

				// Cartões anteriores recebem parcela maior ou igual
				if previous >= 0 {
					assert.LessOrEqual(t, share, previous)
				}
				previous = share
			}

			diff := sum - tt.adClicks
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqualf(t, diff, tt.total-1, "soma %d, total %d", sum, tt.adClicks)
		})
	}
}

func TestTriangularShare_EntradasDegeneradas(t *testing.T) {
	assert.Zero(t, triangularShare(0, 0, 100))
	assert.Zero(t, triangularShare(0, 3, 0))
	assert.Zero(t, triangularShare(0, 3, -5))
}

func TestSubstituteTemplateVars(t *testing.T) {
	link := "https://shop.example.com/?utm_campaign={{campaign.name}}&utm_content={{ad.name}}"

	resolved := substituteTemplateVars(link, "verao-2024", "carrossel-01")

	assert.Equal(t, "https://shop.example.com/?utm_campaign=verao-2024&utm_content=carrossel-01", resolved)
	assert.Equal(t, "", substituteTemplateVars("", "a", "b"))
	assert.Equal(t, "sem variáveis", substituteTemplateVars("sem variáveis", "a", "b"))
}

func TestExtractUTMContent(t *testing.T) {
	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "URL com utm_content",
			link:     "https://shop.example.com/p/123?utm_source=fb&utm_content=card-2",
			expected: "card-2",
		},
		{
			name:     "URL sem utm_content",
			link:     "https://shop.example.com/p/123?utm_source=fb",
			expected: "",
		},
		{
			name:     "URL vazia",
			link:     "",
			expected: "",
		},
		{
			name:     "URL malformada",
			link:     "://inval ida",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractUTMContent(tt.link))
		})
	}
}
