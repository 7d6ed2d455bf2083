package meta

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	metadomain "github.com/adpulse/campaign-reporting-api/infrastructure/integrator/meta/domain"
	"github.com/adpulse/campaign-reporting-api/internal/domain"
)

func insightEnvelope(spend, impressions, clicks, reach string) *metadomain.InsightEnvelope {
	return &metadomain.InsightEnvelope{
		Data: []metadomain.InsightRow{
			{Spend: spend, Impressions: impressions, Clicks: clicks, Reach: reach},
		},
	}
}

func TestFetchCampaignTree_AgrupaAnunciosPorConjunto(t *testing.T) {
	service, client := newTestIntegrator(t)
	tr := testRange("2024-03-01", "2024-03-07")

	client.EXPECT().
		GetCampaignByID(testToken, "camp-1", tr).
		Return(&metadomain.RawCampaign{
			ID:        "camp-1",
			Name:      "Lançamento",
			Objective: "OUTCOME_SALES",
			Status:    "ACTIVE",
			Insights:  insightEnvelope("120.5", "10000", "340", "8000"),
		}, nil)

	client.EXPECT().
		GetAdSetsByCampaignID(testToken, "camp-1", tr).
		Return([]metadomain.RawAdSet{
			{ID: "set-a", Name: "Conjunto A", CampaignID: "camp-1"},
			{ID: "set-b", Name: "Conjunto B", CampaignID: "camp-1"},
		}, nil)

	// Uma única listagem para os 5 anúncios, fora de ordem de proposição
	client.EXPECT().
		GetAdsByCampaignID(testToken, "camp-1", tr).
		Times(1).
		Return([]metadomain.RawAd{
			{ID: "ad-3", AdsetID: "set-a"},
			{ID: "ad-5", AdsetID: "set-b"},
			{ID: "ad-1", AdsetID: "set-a"},
			{ID: "ad-4", AdsetID: "set-b"},
			{ID: "ad-2", AdsetID: "set-a"},
		}, nil)

	tree, err := service.fetchCampaignTree(testToken, "camp-1", tr)

	require.NoError(t, err)
	require.Len(t, tree.campaign.AdSets, 2)

	assert.Len(t, tree.campaign.AdSets[0].Ads, 3)
	assert.Len(t, tree.campaign.AdSets[1].Ads, 2)

	// Anúncios ordenados pelo id atribuído pelo upstream
	assert.Equal(t, "ad-1", tree.campaign.AdSets[0].Ads[0].ID)
	assert.Equal(t, "ad-2", tree.campaign.AdSets[0].Ads[1].ID)
	assert.Equal(t, "ad-3", tree.campaign.AdSets[0].Ads[2].ID)

	assert.Equal(t, 120.5, tree.campaign.Metrics.Spend)
	assert.Equal(t, 340, tree.campaign.Metrics.Clicks)
}

func TestFetchCampaignTree_FalhaNaListagemDeAnunciosNaoDerruba(t *testing.T) {
	service, client := newTestIntegrator(t)
	tr := testRange("2024-03-01", "2024-03-07")

	client.EXPECT().
		GetCampaignByID(testToken, "camp-1", tr).
		Return(&metadomain.RawCampaign{ID: "camp-1"}, nil)

	client.EXPECT().
		GetAdSetsByCampaignID(testToken, "camp-1", tr).
		Return([]metadomain.RawAdSet{{ID: "set-a"}}, nil)

	client.EXPECT().
		GetAdsByCampaignID(testToken, "camp-1", tr).
		Return(nil, errors.New("listagem indisponível"))

	tree, err := service.fetchCampaignTree(testToken, "camp-1", tr)

	require.NoError(t, err)
	assert.Empty(t, tree.campaign.AdSets[0].Ads)
}

func TestDetectAdFormat(t *testing.T) {
	tests := []struct {
		name     string
		creative *metadomain.RawCreative
		expected string
	}{
		{
			name:     "Criativo ausente assume imagem",
			creative: nil,
			expected: domain.AdFormatImage,
		},
		{
			name: "Child attachments indicam carrossel",
			creative: &metadomain.RawCreative{
				ObjectStorySpec: &metadomain.RawObjectStorySpec{
					LinkData: &metadomain.RawLinkData{
						ChildAttachments: []metadomain.RawChildAttachment{{Link: "https://a"}},
					},
				},
			},
			expected: domain.AdFormatCarousel,
		},
		{
			name: "Video data indica vídeo",
			creative: &metadomain.RawCreative{
				ObjectStorySpec: &metadomain.RawObjectStorySpec{
					VideoData: &metadomain.RawVideoData{VideoID: "v1"},
				},
			},
			expected: domain.AdFormatVideo,
		},
		{
			name:     "Video id no criativo indica vídeo",
			creative: &metadomain.RawCreative{VideoID: "v1"},
			expected: domain.AdFormatVideo,
		},
		{
			name: "Link data sem cartões é imagem",
			creative: &metadomain.RawCreative{
				ObjectStorySpec: &metadomain.RawObjectStorySpec{
					LinkData: &metadomain.RawLinkData{Link: "https://a"},
				},
			},
			expected: domain.AdFormatImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectAdFormat(tt.creative))
		})
	}
}

func TestNormalizeBudget(t *testing.T) {
	t.Run("Orçamento diário convertido para unidade principal", func(t *testing.T) {
		budget := normalizeBudget(&metadomain.RawAdSet{DailyBudget: "2550"})

		assert.Equal(t, "daily", budget.Type)
		assert.Equal(t, 25.5, budget.Amount)
	})

	t.Run("Orçamento vitalício", func(t *testing.T) {
		budget := normalizeBudget(&metadomain.RawAdSet{LifetimeBudget: "100000"})

		assert.Equal(t, "lifetime", budget.Type)
		assert.Equal(t, 1000.0, budget.Amount)
	})

	t.Run("Sem orçamento retorna nil", func(t *testing.T) {
		assert.Nil(t, normalizeBudget(&metadomain.RawAdSet{}))
	})
}

func TestNormalizePlacement(t *testing.T) {
	t.Run("Sem plataformas é automático", func(t *testing.T) {
		placement := normalizePlacement(nil)
		assert.Equal(t, "automatic", placement.Type)
	})

	t.Run("Com plataformas é manual", func(t *testing.T) {
		placement := normalizePlacement(&metadomain.RawTargeting{
			PublisherPlatforms: []string{"facebook", "instagram"},
			FacebookPositions:  []string{"feed"},
			InstagramPositions: []string{"story"},
			DevicePlatforms:    []string{"mobile"},
		})

		assert.Equal(t, "manual", placement.Type)
		assert.Equal(t, []string{"facebook", "instagram"}, placement.Platforms)
		assert.Equal(t, []string{"feed", "story"}, placement.Positions)
		assert.Equal(t, []string{"mobile"}, placement.Devices)
	})
}

func TestNormalizeAd_CamposDoCriativo(t *testing.T) {
	raw := &metadomain.RawAd{
		ID:     "ad-1",
		Name:   "Anúncio 1",
		Status: "ACTIVE",
		Creative: &metadomain.RawCreative{
			ThumbnailURL: "https://thumb",
			ObjectStorySpec: &metadomain.RawObjectStorySpec{
				LinkData: &metadomain.RawLinkData{
					Name:         "Título do link",
					Message:      "Texto principal",
					Description:  "Descrição",
					Link:         "https://destino",
					Picture:      "https://imagem",
					CallToAction: &metadomain.RawCallToAction{Type: "SHOP_NOW"},
				},
			},
		},
		Insights: insightEnvelope("10.0", "500", "25", "400"),
	}

	ad := normalizeAd(raw)

	assert.Equal(t, "Título do link", ad.Headline)
	assert.Equal(t, "Texto principal", ad.PrimaryText)
	assert.Equal(t, "Descrição", ad.Description)
	assert.Equal(t, "https://destino", ad.LinkURL)
	assert.Equal(t, "https://imagem", ad.MediaURL)
	assert.Equal(t, "SHOP_NOW", ad.CallToAction)
	assert.Equal(t, domain.AdFormatImage, ad.Format)
	assert.Equal(t, 25, ad.Metrics.Clicks)
}
