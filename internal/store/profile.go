// Package store holds the declarative store profiles and the multi-factor
// store detector. Profiles are pure data: supporting a new chain means adding
// a profile entry, not touching the detector or parser algorithms.
package store

import (
	"fmt"
	"regexp"

	"github.com/Veraticus/kassenbon/internal/common"
)

// PriceLocation selects the parsing strategy for a profile's receipt layout.
type PriceLocation string

const (
	// PriceSameLine means name and price share one line.
	PriceSameLine PriceLocation = "same-line"
	// PriceNextLine means the price follows on one of the next lines.
	PriceNextLine PriceLocation = "next-line"
	// PriceColumn means name and price share a line separated by wide
	// whitespace columns.
	PriceColumn PriceLocation = "column"
)

// Signature is one structural trait of a profile's receipts: a line pattern
// together with the number of matching lines required for the trait to count.
// Thresholds live here, in data, so the detector stays profile-agnostic.
type Signature struct {
	Name     string
	Pattern  string
	MinCount int
}

// Profile describes how one retail chain lays out its receipts. Profiles are
// immutable after Load.
type Profile struct {
	ID                  string
	DisplayName         string
	Tokens              []string // Identification tokens including known OCR-error variants
	Signatures          []Signature
	HeaderKeywords      []string // Lines containing these are store identity/header lines
	StartPatterns       []string // A product section starts at the first non-header line matching one
	EndKeywords         []string // A product section ends at the first line containing one
	IgnoreKeywords      []string // Lines containing these are skipped inside the section
	FooterKeywords      []string // Expected near the end of the receipt
	TotalKeywords       []string // The total amount sits on a line containing one
	PriceLocation       PriceLocation
	ArticleNumbersFirst bool // Article numbers precede product names
}

// CompiledProfile is a Profile with its patterns compiled. Built once at
// startup; read-only afterwards.
type CompiledProfile struct {
	Profile
	signatureRes []*regexp.Regexp
	startRes     []*regexp.Regexp
}

// SignatureRegexps returns the compiled structural signature patterns,
// index-aligned with Profile.Signatures.
func (c *CompiledProfile) SignatureRegexps() []*regexp.Regexp {
	return c.signatureRes
}

// StartRegexps returns the compiled section start patterns.
func (c *CompiledProfile) StartRegexps() []*regexp.Regexp {
	return c.startRes
}

// Registry holds all compiled profiles in declaration order. Declaration
// order is meaningful: detection ties are broken by it.
type Registry struct {
	profiles []*CompiledProfile
	byID     map[string]*CompiledProfile
}

// NewRegistry compiles the given profiles. A malformed profile aborts
// construction; this is the only place pattern errors can surface, before any
// request is processed.
func NewRegistry(profiles []Profile) (*Registry, error) {
	r := &Registry{
		profiles: make([]*CompiledProfile, 0, len(profiles)),
		byID:     make(map[string]*CompiledProfile, len(profiles)),
	}

	for _, p := range profiles {
		compiled, err := compile(p)
		if err != nil {
			return nil, err
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate profile id %q", common.ErrInvalidProfile, p.ID)
		}
		r.profiles = append(r.profiles, compiled)
		r.byID[p.ID] = compiled
	}

	return r, nil
}

// Profiles returns all profiles in declaration order.
func (r *Registry) Profiles() []*CompiledProfile {
	return r.profiles
}

// Get returns the profile with the given id, or nil.
func (r *Registry) Get(id string) *CompiledProfile {
	return r.byID[id]
}

func compile(p Profile) (*CompiledProfile, error) {
	if p.ID == "" || p.DisplayName == "" {
		return nil, fmt.Errorf("%w: id and display name are required", common.ErrInvalidProfile)
	}
	if len(p.Tokens) == 0 {
		return nil, fmt.Errorf("%w: profile %q declares no identification tokens", common.ErrInvalidProfile, p.ID)
	}
	switch p.PriceLocation {
	case PriceSameLine, PriceNextLine, PriceColumn:
	default:
		return nil, fmt.Errorf("%w: profile %q has unknown price location %q", common.ErrInvalidProfile, p.ID, p.PriceLocation)
	}

	compiled := &CompiledProfile{Profile: p}

	for _, sig := range p.Signatures {
		re, err := regexp.Compile(sig.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %q signature %q: %v", common.ErrInvalidProfile, p.ID, sig.Name, err)
		}
		compiled.signatureRes = append(compiled.signatureRes, re)
	}

	for _, pattern := range p.StartPatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: profile %q start pattern %q: %v", common.ErrInvalidProfile, p.ID, pattern, err)
		}
		compiled.startRes = append(compiled.startRes, re)
	}

	return compiled, nil
}
