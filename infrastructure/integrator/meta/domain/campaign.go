package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// RawCampaign é o payload bruto de uma campanha com insights embutidos
type RawCampaign struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Objective string           `json:"objective"`
	Status    string           `json:"status"`
	Insights  *InsightEnvelope `json:"insights,omitempty"`
}

// RawAdSet é o payload bruto de um conjunto de anúncios
type RawAdSet struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Status         string           `json:"status"`
	CampaignID     string           `json:"campaign_id"`
	DailyBudget    string           `json:"daily_budget,omitempty"`
	LifetimeBudget string           `json:"lifetime_budget,omitempty"`
	StartTime      string           `json:"start_time,omitempty"`
	EndTime        string           `json:"end_time,omitempty"`
	Targeting      *RawTargeting    `json:"targeting,omitempty"`
	Insights       *InsightEnvelope `json:"insights,omitempty"`
}

// RawAd é o payload bruto de um anúncio com criativo embutido
type RawAd struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Status   string           `json:"status"`
	AdsetID  string           `json:"adset_id"`
	Creative *RawCreative     `json:"creative,omitempty"`
	Insights *InsightEnvelope `json:"insights,omitempty"`
}

// RawCreative carrega os campos do criativo usados na normalização
type RawCreative struct {
	ID              string              `json:"id"`
	ThumbnailURL    string              `json:"thumbnail_url,omitempty"`
	ImageURL        string              `json:"image_url,omitempty"`
	VideoID         string              `json:"video_id,omitempty"`
	Body            string              `json:"body,omitempty"`
	Title           string              `json:"title,omitempty"`
	ObjectStorySpec *RawObjectStorySpec `json:"object_story_spec,omitempty"`
}

type RawObjectStorySpec struct {
	LinkData  *RawLinkData  `json:"link_data,omitempty"`
	VideoData *RawVideoData `json:"video_data,omitempty"`
}

// RawLinkData descreve criativos de imagem e carrossel
type RawLinkData struct {
	Link             string               `json:"link,omitempty"`
	Message          string               `json:"message,omitempty"`
	Name             string               `json:"name,omitempty"`
	Description      string               `json:"description,omitempty"`
	Picture          string               `json:"picture,omitempty"`
	CallToAction     *RawCallToAction     `json:"call_to_action,omitempty"`
	ChildAttachments []RawChildAttachment `json:"child_attachments,omitempty"`
}

type RawVideoData struct {
	VideoID      string           `json:"video_id,omitempty"`
	Message      string           `json:"message,omitempty"`
	Title        string           `json:"title,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
	CallToAction *RawCallToAction `json:"call_to_action,omitempty"`
}

type RawCallToAction struct {
	Type  string `json:"type,omitempty"`
	Value struct {
		Link string `json:"link,omitempty"`
	} `json:"value,omitempty"`
}

// RawChildAttachment é um cartão de carrossel no criativo. O id identifica o
// sub-criativo do cartão quando o upstream o retorna, casando com o
// carousel_card_id dos insights.
type RawChildAttachment struct {
	ID          string `json:"id,omitempty"`
	Link        string `json:"link,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Picture     string `json:"picture,omitempty"`
	ImageHash   string `json:"image_hash,omitempty"`
}
