package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func registryOf(keys ...string) *Registry {
	reg := NewRegistry()
	for _, k := range keys {
		reg.Register(NewRoute(k, view(k)))
	}
	return reg
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/home", "/home"},
		{"/home/", "/home"},
		{"/home/about/", "/home/about"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestIsMatch(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		target string
		want   bool
	}{
		{"exact", "/home", "/home", true},
		{"exact with trailing slash target", "/home", "/home/", true},
		{"exact with trailing slash key", "/home/", "/home", true},
		{"layout ancestor", "/home", "/home/about", true},
		{"deep ancestor", "/home", "/home/about/team", true},
		{"sibling prefix without separator", "/home", "/homework", false},
		{"descendant is not ancestor", "/home/about", "/home", false},
		{"unrelated", "/dashboard", "/home", false},
		{"root against root", "/", "/", true},
		{"root is ancestor", "/", "/home", true},
		{"root against suffix without separator", "/", "/ab", true},
		{"non-root against root", "/home", "/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMatch(tt.key, tt.target))
		})
	}
}

func TestMatch_NestedChainOrder(t *testing.T) {
	reg := registryOf("/home/about/team", "/home", "/home/about")

	got := Match(reg, "/home/about/team")

	assert.Equal(t, []string{"/home", "/home/about", "/home/about/team"}, Keys(got))
}

func TestMatch_Isolated(t *testing.T) {
	reg := registryOf("/home", "/home/about", "/dashboard")

	assert.Equal(t, []string{"/dashboard"}, Keys(Match(reg, "/dashboard")))
}

func TestMatch_TrailingSlashEquivalent(t *testing.T) {
	reg := registryOf("/home", "/home/about", "/home/about/team", "/dashboard")

	assert.Equal(t, Keys(Match(reg, "/home/about")), Keys(Match(reg, "/home/about/")))
}

func TestMatch_Empty(t *testing.T) {
	assert.Empty(t, Match(NewRegistry(), "/home"))
	assert.Empty(t, Match(nil, "/home"))
	assert.Empty(t, Match(registryOf("/home", "/dashboard"), "/settings"))
}

func TestMatch_RootIsOutermost(t *testing.T) {
	reg := registryOf("/h/home", "/h", "/")

	assert.Equal(t, []string{"/", "/h", "/h/home"}, Keys(Match(reg, "/h/home")))
	assert.Equal(t, []string{"/"}, Keys(Match(reg, "/")))
}

func TestMatch_EqualLengthKeepsRegistrationOrder(t *testing.T) {
	// "//" normalises to the root, so it is an ancestor with the same raw
	// length as "/a".
	reg := registryOf("/a/b", "//", "/a")
	assert.Equal(t, []string{"//", "/a", "/a/b"}, Keys(Match(reg, "/a/b/c")))

	reg = registryOf("/a/b", "/a", "//")
	assert.Equal(t, []string{"/a", "//", "/a/b"}, Keys(Match(reg, "/a/b/c")))
}

func TestMatch_MembershipProperty(t *testing.T) {
	keys := []string{"/", "/home", "/home/", "/home/about", "/homework", "/home/about/team", "/dashboard", "/dash"}
	targets := []string{"/", "/home", "/home/", "/home/about", "/home/about/team/", "/homework/x", "/dashboard", "/zzz"}
	reg := registryOf(keys...)

	for _, target := range targets {
		got := map[string]bool{}
		for _, k := range Keys(Match(reg, target)) {
			got[k] = true
		}
		p := Normalize(target)
		for _, k := range keys {
			nk := Normalize(k)
			want := nk == p || (nk == "/" && p != "/") || strings.HasPrefix(p, nk+"/")
			assert.Equal(t, want, got[k], "key %q target %q", k, target)
		}
	}
}

func TestMatch_SortedByKeyLength(t *testing.T) {
	reg := registryOf("/a/b/c/d", "/a", "/a/b/c", "/", "/a/b")

	got := Match(reg, "/a/b/c/d/e")
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, len(got[i-1].Key), len(got[i].Key))
	}
	assert.Len(t, got, 5)
}
