package content

import (
	"sort"
	"strings"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/apperrors"
)

// Flag names a boolean toggle a record may support.
type Flag string

const (
	FlagIsActive  Flag = "isActive"
	FlagFeatured  Flag = "featured"
	FlagIsPinned  Flag = "isPinned"
	FlagPublished Flag = "published"
)

// FlagPatch toggles visibility flags; nil fields are left alone.
type FlagPatch struct {
	IsActive  *bool `json:"isActive,omitempty"`
	Featured  *bool `json:"featured,omitempty"`
	IsPinned  *bool `json:"isPinned,omitempty"`
	Published *bool `json:"published,omitempty"`
}

func (p FlagPatch) set() map[Flag]*bool {
	flags := map[Flag]*bool{}
	if p.IsActive != nil {
		flags[FlagIsActive] = p.IsActive
	}
	if p.Featured != nil {
		flags[FlagFeatured] = p.Featured
	}
	if p.IsPinned != nil {
		flags[FlagIsPinned] = p.IsPinned
	}
	if p.Published != nil {
		flags[FlagPublished] = p.Published
	}
	return flags
}

// Check fails when the patch is empty or touches a flag outside supported.
func (p FlagPatch) Check(supported ...Flag) error {
	flags := p.set()
	if len(flags) == 0 {
		return apperrors.New(apperrors.CodeInvalidArgument, "no flags to update")
	}

	allowed := make(map[Flag]bool, len(supported))
	for _, f := range supported {
		allowed[f] = true
	}

	var rejected []string
	for f := range flags {
		if !allowed[f] {
			rejected = append(rejected, string(f))
		}
	}
	if len(rejected) > 0 {
		sort.Strings(rejected)
		return apperrors.New(apperrors.CodeInvalidArgument, "unsupported flags: "+strings.Join(rejected, ", "))
	}
	return nil
}

// Fields returns the patched flags as a map, for audit metadata.
func (p FlagPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	for f, v := range p.set() {
		fields[string(f)] = *v
	}
	return fields
}
