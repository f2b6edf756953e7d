package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sagarc03/jukebox"
)

// Field names a required field that can fail validation.
type Field string

const (
	FieldToken Field = KeyToken
	FieldOwner Field = KeyOwner
)

// Failure describes a required field that failed its rule.
type Failure struct {
	Field Field
	Rule  string
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s failed %s", f.Field, f.Rule)
}

// required holds the fields with domain rules, in evaluation order.
type required struct {
	Token string `validate:"required,notplaceholder"`
	Owner int64  `validate:"gt=0"`
}

var structFields = map[string]Field{
	"Token": FieldToken,
	"Owner": FieldOwner,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notplaceholder", func(fl validator.FieldLevel) bool {
		return !strings.EqualFold(strings.TrimSpace(fl.Field().String()), TokenPlaceholder)
	})
	return v
}

// ValidToken reports whether token is set and is not the placeholder.
func ValidToken(token string) bool {
	return validate.Var(strings.TrimSpace(token), "required,notplaceholder") == nil
}

// ValidOwner reports whether owner is a usable user id.
func ValidOwner(owner int64) bool {
	return validate.Var(owner, "gt=0") == nil
}

// ParseOwner parses a base 10 user id. Anything that does not parse
// yields 0, which ValidOwner rejects.
func ParseOwner(s string) int64 {
	owner, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return owner
}

// Validate builds the in-progress Config from raw and checks the required
// fields. Failures are returned in evaluation order: token, then owner.
//
// Only the token and owner are checked. Every other field is copied as-is
// and is the operator's responsibility.
func Validate(raw RawConfig) (*Config, []Failure) {
	cfg := &Config{
		token:              strings.TrimSpace(raw.Token),
		owner:              ParseOwner(raw.Owner),
		prefix:             raw.Prefix,
		altPrefix:          raw.AltPrefix,
		help:               raw.Help,
		successEmoji:       raw.Success,
		warningEmoji:       raw.Warning,
		errorEmoji:         raw.Error,
		loadingEmoji:       raw.Loading,
		searchingEmoji:     raw.Searching,
		game:               jukebox.ParseGame(raw.Game),
		status:             jukebox.ParseStatus(raw.Status),
		stayInChannel:      raw.StayInChannel,
		songInStatus:       raw.SongInStatus,
		npImages:           raw.NPImages,
		updateAlerts:       raw.UpdateAlerts,
		eval:               raw.Eval,
		maxSeconds:         raw.MaxTime,
		aloneTimeUntilStop: raw.AloneTimeUntilStop,
		playlistsFolder:    raw.PlaylistsFolder,
		aliases:            NewAliasTable(raw.Aliases),
	}
	return cfg, checkRequired(cfg.token, cfg.owner)
}

func checkRequired(token string, owner int64) []Failure {
	err := validate.Struct(required{Token: token, Owner: owner})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Failure{{Field: FieldToken, Rule: err.Error()}}
	}

	failures := make([]Failure, 0, len(verrs))
	for _, fe := range verrs {
		failures = append(failures, Failure{Field: structFields[fe.StructField()], Rule: fe.Tag()})
	}
	return failures
}
