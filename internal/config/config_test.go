package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	assert.NoError(cfg.Validate())
	assert.Len(cfg.Tags, 5)
}

func TestConfig_ResolveFlagsSplitsTags(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	assert.NoError(flags.Parse([]string{"--tags=a,b,c"}))
	assert.NoError(cfg.ResolveFlags())
	assert.Equal([]string{"a", "b", "c"}, cfg.Tags)
}

func TestConfig_ResolveFlagsKeepsDefaultWhenUnset(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	want := append([]string(nil), cfg.Tags...)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	assert.NoError(flags.Parse(nil))
	assert.NoError(cfg.ResolveFlags())
	assert.Equal(want, cfg.Tags)
}

func TestConfig_ValidateRejectsDuplicateTags(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	cfg.Tags = []string{"a", "a"}
	assert.Error(cfg.Validate())
}

func TestConfig_ValidateRejectsEmptyTagList(t *testing.T) {
	assert := assert.New(t)
	cfg := Default()
	cfg.Tags = nil
	assert.Error(cfg.Validate())
}
