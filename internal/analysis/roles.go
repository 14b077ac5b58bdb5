// Package analysis implements the resume analysis engine: skill
// extraction, ATS scoring, role recommendation, learning plans,
// project suggestions and market insights.
package analysis

import (
	_ "embed"
	"encoding/json"
	"log"
	"sort"
	"strings"
)

//go:embed data/roles.json
var rolesJSON []byte

// RoleProject is a suggested portfolio project attached to a role.
type RoleProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

// RoleProfile describes one role in the catalog.
type RoleProfile struct {
	Skills   []string      `json:"skills"`
	Projects []RoleProject `json:"projects"`
}

// Catalog is the role database the engine scores against.
type Catalog struct {
	roles map[string]RoleProfile
	keys  []string
	// master is the union of every role's skills plus aliases,
	// used by the skill extractor.
	master []string
}

// aliases maps shorthand tokens to the catalog's canonical spelling.
var aliases = map[string]string{
	"js":         "javascript",
	"py":         "python",
	"powerbi":    "power bi",
	"rest api":   "rest apis",
	"k8s":        "kubernetes",
	"aws lambda": "aws",
}

// fallbackCatalog is used when the embedded catalog cannot be parsed.
func fallbackCatalog() *Catalog {
	c := &Catalog{roles: map[string]RoleProfile{
		"General": {Skills: []string{"communication", "problem solving", "documentation"}},
	}}
	c.index()
	return c
}

// DefaultCatalog parses the embedded roles.json. A parse failure is
// logged and degrades to a minimal General-only catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(rolesJSON)
	if err != nil {
		log.Printf("[analysis] failed to parse embedded roles.json, using fallback: %v", err)
		return fallbackCatalog()
	}
	return c
}

// ParseCatalog builds a Catalog from roles JSON.
func ParseCatalog(data []byte) (*Catalog, error) {
	roles := make(map[string]RoleProfile)
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, err
	}
	c := &Catalog{roles: roles}
	c.index()
	return c, nil
}

func (c *Catalog) index() {
	c.keys = make([]string, 0, len(c.roles))
	for k := range c.roles {
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)

	seen := make(map[string]bool)
	add := func(s string) {
		s = strings.ToLower(s)
		if s != "" && !seen[s] {
			seen[s] = true
			c.master = append(c.master, s)
		}
	}
	for _, meta := range c.roles {
		for _, s := range meta.Skills {
			add(s)
		}
	}
	for k, v := range aliases {
		add(k)
		add(v)
	}
	sort.Strings(c.master)
}

// Roles returns the role names in deterministic order.
func (c *Catalog) Roles() []string {
	return c.keys
}

// Profile returns the profile for a role key.
func (c *Catalog) Profile(key string) (RoleProfile, bool) {
	p, ok := c.roles[key]
	return p, ok
}

// SkillsFor returns the lowercase skills of a role key.
func (c *Catalog) SkillsFor(key string) []string {
	p, ok := c.roles[key]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		out = append(out, strings.ToLower(s))
	}
	return out
}

// MatchRole finds the catalog key closest to targetRole. Resolution
// order: exact (case-insensitive), substring either way, similarity
// ratio >= 0.6, token overlap, then the General fallback.
func (c *Catalog) MatchRole(targetRole string) string {
	fallback := "General"
	if _, ok := c.roles[fallback]; !ok && len(c.keys) > 0 {
		fallback = c.keys[0]
	}

	tr := strings.TrimSpace(targetRole)
	if tr == "" {
		return fallback
	}

	for _, r := range c.keys {
		if strings.EqualFold(r, tr) {
			return r
		}
	}
	trLower := strings.ToLower(tr)
	for _, r := range c.keys {
		rLower := strings.ToLower(r)
		if strings.Contains(rLower, trLower) || strings.Contains(trLower, rLower) {
			return r
		}
	}
	if close := closestMatch(tr, c.keys, 0.6); close != "" {
		return close
	}
	tokens := tokenize(tr)
	for _, r := range c.keys {
		rTokens := tokenize(r)
		for _, t := range tokens {
			for _, rt := range rTokens {
				if t == rt {
					return r
				}
			}
		}
	}
	return fallback
}
