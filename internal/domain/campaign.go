package domain

// Formatos de anúncio suportados
const (
	AdFormatImage    = "image"
	AdFormatVideo    = "video"
	AdFormatCarousel = "carousel"
)

// MetricTotals agrega as métricas básicas de performance de qualquer entidade
type MetricTotals struct {
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Reach       int     `json:"reach"`
}

// Campaign é a projeção somente-leitura de uma campanha da plataforma de anúncios
type Campaign struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Objective string       `json:"objective"`
	Status    string       `json:"status"`
	Metrics   MetricTotals `json:"metrics"`
	AdSets    []*AdSet     `json:"ad_sets"`
}

// AdSet agrupa anúncios que compartilham público, posicionamento e orçamento
type AdSet struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Status    string       `json:"status"`
	Audience  *Audience    `json:"audience,omitempty"`
	Placement *Placement   `json:"placement,omitempty"`
	Budget    *Budget      `json:"budget,omitempty"`
	Schedule  *Schedule    `json:"schedule,omitempty"`
	Metrics   MetricTotals `json:"metrics"`
	Ads       []*Ad        `json:"ads"`
}

// Ad representa um anúncio com seu criativo e métricas do período
type Ad struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	Format        string          `json:"format"`
	MediaURL      string          `json:"media_url,omitempty"`
	ThumbnailURL  string          `json:"thumbnail_url,omitempty"`
	VideoID       string          `json:"video_id,omitempty"`
	Headline      string          `json:"headline,omitempty"`
	PrimaryText   string          `json:"primary_text,omitempty"`
	Description   string          `json:"description,omitempty"`
	CallToAction  string          `json:"call_to_action,omitempty"`
	LinkURL       string          `json:"link_url,omitempty"`
	Metrics       MetricTotals    `json:"metrics"`
	DailyStats    []*DailyStat    `json:"dailyStats"`
	CarouselCards []*CarouselCard `json:"carousel_cards,omitempty"`
}

// CarouselCard é um cartão individual de um anúncio em formato carrossel.
// ActualClicks é derivado, não autoritativo: a soma dos cartões não é garantida
// de bater com o total de cliques do anúncio quando a estimativa é usada.
type CarouselCard struct {
	Headline     string `json:"headline"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	ActualClicks int    `json:"actual_clicks"`
	UTMContent   string `json:"utm_content,omitempty"`
}
