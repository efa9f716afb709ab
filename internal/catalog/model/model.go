package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Flags are the boolean attributes a figure may carry.
type Flags struct {
	MetalBody       bool `json:"metalBody"`
	OCE             bool `json:"oce"` // original color edition
	Revival         bool `json:"revival"`
	PlainCloth      bool `json:"plainCloth"`
	BrokenCloth     bool `json:"brokenCloth"`
	BronzeToGold    bool `json:"bronzeToGold"`
	Gold            bool `json:"gold"`
	HongKongVersion bool `json:"hkVersion"` // regional variant
	Manga           bool `json:"manga"`     // manga color variant
	Surplice        bool `json:"surplice"`
	Set             bool `json:"set"` // part of a multi-figure set
}

// CatalogRecord is the canonical catalog entry. The matching engine only ever
// reads it; mutation happens through the store.
type CatalogRecord struct {
	ID                    string           `json:"id"`
	OriginalName          string           `json:"originalName"`
	BaseName              string           `json:"baseName"`
	LineUp                LineUp           `json:"lineUp"`
	Series                Series           `json:"series,omitempty"`
	Group                 Group            `json:"group,omitempty"`
	Distribution          Distribution     `json:"distribution,omitempty"`
	BasePrice             *decimal.Decimal `json:"basePrice,omitempty"`
	ReleasePrice          *decimal.Decimal `json:"releasePrice,omitempty"`
	FirstAnnouncementDate *time.Time       `json:"firstAnnouncementDate,omitempty"`
	PreorderDate          *time.Time       `json:"preorderDate,omitempty"`
	ReleaseDate           *time.Time       `json:"releaseDate,omitempty"`
	ConfirmedDate         bool             `json:"confirmedDate"`
	URL                   string           `json:"url,omitempty"`
	Flags                 Flags            `json:"flags"`
	Tags                  []string         `json:"tags,omitempty"`
	Remarks               string           `json:"remarks,omitempty"`
}

// SearchName is the name candidates are ranked on: the simplified base form
// when present, otherwise the manufacturer's original name.
func (r CatalogRecord) SearchName() string {
	if r.BaseName != "" {
		return r.BaseName
	}
	return r.OriginalName
}

// DraftRecord is a parsed-but-not-yet-persisted entry produced during
// ingestion. Same shape as CatalogRecord minus id and tags; the store assigns
// those on insert.
type DraftRecord struct {
	OriginalName          string           `json:"originalName"`
	BaseName              string           `json:"baseName"`
	LineUp                LineUp           `json:"lineUp"`
	Series                Series           `json:"series,omitempty"`
	Group                 Group            `json:"group,omitempty"`
	Distribution          Distribution     `json:"distribution,omitempty"`
	BasePrice             *decimal.Decimal `json:"basePrice,omitempty"`
	ReleasePrice          *decimal.Decimal `json:"releasePrice,omitempty"`
	FirstAnnouncementDate *time.Time       `json:"firstAnnouncementDate,omitempty"`
	PreorderDate          *time.Time       `json:"preorderDate,omitempty"`
	ReleaseDate           *time.Time       `json:"releaseDate,omitempty"`
	ConfirmedDate         bool             `json:"confirmedDate"`
	URL                   string           `json:"url,omitempty"`
	Flags                 Flags            `json:"flags"`
	Remarks               string           `json:"remarks,omitempty"`
}

// Record converts the draft to an unpersisted CatalogRecord.
func (d DraftRecord) Record() CatalogRecord {
	return CatalogRecord{
		OriginalName:          d.OriginalName,
		BaseName:              d.BaseName,
		LineUp:                d.LineUp,
		Series:                d.Series,
		Group:                 d.Group,
		Distribution:          d.Distribution,
		BasePrice:             d.BasePrice,
		ReleasePrice:          d.ReleasePrice,
		FirstAnnouncementDate: d.FirstAnnouncementDate,
		PreorderDate:          d.PreorderDate,
		ReleaseDate:           d.ReleaseDate,
		ConfirmedDate:         d.ConfirmedDate,
		URL:                   d.URL,
		Flags:                 d.Flags,
		Remarks:               d.Remarks,
	}
}

// MatchQuery is the raw match input plus everything derived from it.
type MatchQuery struct {
	Raw            string `json:"raw"`
	NormalizedText string `json:"normalizedText"`
	LineUp         LineUp `json:"lineUp"`
}

// MatchCandidate pairs a catalog record with its computed distance. Ephemeral,
// never persisted.
type MatchCandidate struct {
	Record   *CatalogRecord `json:"record"`
	Distance int            `json:"distance"`
}
