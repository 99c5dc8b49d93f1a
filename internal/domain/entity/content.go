package entity

// HomeContent is the singleton document at content/home holding free-text
// overrides for the homepage. Saves are merge writes, so zero-valued fields
// never clobber existing ones.
type HomeContent struct {
	PreloaderText     string `json:"preloader_text,omitempty" firestore:"preloader_text,omitempty"`
	TagText           string `json:"tag_text,omitempty" firestore:"tag_text,omitempty"`
	HeadlineLine1     string `json:"headline_line1,omitempty" firestore:"headline_line1,omitempty"`
	HeadlineHighlight string `json:"headline_highlight,omitempty" firestore:"headline_highlight,omitempty"`
	Subline           string `json:"subline,omitempty" firestore:"subline,omitempty"`
	CTAPrimary        string `json:"cta_primary,omitempty" firestore:"cta_primary,omitempty"`
	CTASecondary      string `json:"cta_secondary,omitempty" firestore:"cta_secondary,omitempty"`
	HeroVideoURL      string `json:"hero_video_url,omitempty" firestore:"hero_video_url,omitempty"`
}
