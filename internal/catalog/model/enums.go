package model

import "strings"

// Enums are string keys with a separate canonical display label. Declaration
// order in the *s slices matters: the line-up classifier scans them in order,
// so a label that contains another label ("Myth Cloth EX" vs "Myth Cloth")
// must be declared first.

type LineUp string

const (
	MythClothEX    LineUp = "MYTH_CLOTH_EX"
	MythCloth      LineUp = "MYTH_CLOTH"
	Appendix       LineUp = "APPENDIX"
	Crown          LineUp = "CROWN"
	Legend         LineUp = "LEGEND"
	DDPanoramation LineUp = "DD_PANORAMATION"
	FiguartsZero   LineUp = "FIGUARTS_ZERO"
	Figuarts       LineUp = "FIGUARTS"
)

// LineUps in classifier priority order, most specific label first.
var LineUps = []LineUp{
	MythClothEX,
	MythCloth,
	Appendix,
	Crown,
	Legend,
	DDPanoramation,
	FiguartsZero,
	Figuarts,
}

var lineUpLabels = map[LineUp]string{
	MythClothEX:    "Myth Cloth EX",
	MythCloth:      "Myth Cloth",
	Appendix:       "Appendix",
	Crown:          "Saint Cloth Crown",
	Legend:         "Saint Cloth Legend",
	DDPanoramation: "D.D. Panoramation",
	FiguartsZero:   "Figuarts Zero",
	Figuarts:       "Figuarts",
}

func (l LineUp) Label() string { return lineUpLabels[l] }

// ParseLineUp matches a cell value against canonical labels, case-sensitive.
func ParseLineUp(label string) (LineUp, bool) {
	for _, l := range LineUps {
		if lineUpLabels[l] == label {
			return l, true
		}
	}
	return "", false
}

type Series string

const (
	SaintSeiya        Series = "SAINT_SEIYA"
	SaintiaSho        Series = "SAINTIA_SHO"
	SoulOfGold        Series = "SOG"
	LegendOfSanctuary Series = "LEGEND_OF_SANCTUARY"
	Omega             Series = "OMEGA"
	LostCanvas        Series = "LOST_CANVAS"
	NextDimension     Series = "NEXT_DIMENSION"
)

var AllSeries = []Series{
	SaintSeiya,
	SaintiaSho,
	SoulOfGold,
	LegendOfSanctuary,
	Omega,
	LostCanvas,
	NextDimension,
}

var seriesLabels = map[Series]string{
	SaintSeiya:        "Saint Seiya",
	SaintiaSho:        "Saintia Sho",
	SoulOfGold:        "Soul of Gold",
	LegendOfSanctuary: "Legend of Sanctuary",
	Omega:             "Omega",
	LostCanvas:        "The Lost Canvas",
	NextDimension:     "Next Dimension",
}

func (s Series) Label() string { return seriesLabels[s] }

func ParseSeries(label string) (Series, bool) {
	for _, s := range AllSeries {
		if seriesLabels[s] == label {
			return s, true
		}
	}
	return "", false
}

type Group string

const (
	GroupBronze   Group = "BRONZE"
	GroupGold     Group = "GOLD"
	GroupSilver   Group = "SILVER"
	GroupGod      Group = "GOD"
	GroupSpecter  Group = "SPECTER"
	GroupMarina   Group = "MARINA"
	GroupRobe     Group = "ROBE"
	GroupScale    Group = "SCALE"
	GroupSurplice Group = "SURPLICE"
	GroupOther    Group = "OTHER"
)

var Groups = []Group{
	GroupBronze,
	GroupGold,
	GroupSilver,
	GroupGod,
	GroupSpecter,
	GroupMarina,
	GroupRobe,
	GroupScale,
	GroupSurplice,
	GroupOther,
}

var groupLabels = map[Group]string{
	GroupBronze:   "Bronze Saint",
	GroupGold:     "Gold Saint",
	GroupSilver:   "Silver Saint",
	GroupGod:      "God",
	GroupSpecter:  "Specter",
	GroupMarina:   "Marina",
	GroupRobe:     "God Robe",
	GroupScale:    "Scale",
	GroupSurplice: "Surplice",
	GroupOther:    "Other",
}

func (g Group) Label() string { return groupLabels[g] }

func ParseGroup(label string) (Group, bool) {
	for _, g := range Groups {
		if groupLabels[g] == label {
			return g, true
		}
	}
	return "", false
}

type Distribution string

const (
	GeneralRelease Distribution = "GENERAL"
	TamashiiWeb    Distribution = "TAMASHII_WEB"
	EventExclusive Distribution = "EVENT"
	StoreExclusive Distribution = "STORE"
)

var Distributions = []Distribution{
	GeneralRelease,
	TamashiiWeb,
	EventExclusive,
	StoreExclusive,
}

var distributionLabels = map[Distribution]string{
	GeneralRelease: "General Release",
	TamashiiWeb:    "Tamashii Web Shop",
	EventExclusive: "Event Exclusive",
	StoreExclusive: "Store Exclusive",
}

func (d Distribution) Label() string { return distributionLabels[d] }

func ParseDistribution(label string) (Distribution, bool) {
	for _, d := range Distributions {
		if distributionLabels[d] == label {
			return d, true
		}
	}
	return "", false
}

// LineUpLabelTokens returns every word occurring in any canonical line-up
// label. The matcher uses this set to strip line-up wording from a search
// string before ranking.
func LineUpLabelTokens() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, l := range LineUps {
		for _, tok := range strings.Fields(lineUpLabels[l]) {
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				out = append(out, tok)
			}
		}
	}
	return out
}
