package playback

import (
	"time"
)

// testConfig satisfies domain.Config with values suited to unit tests:
// the poll interval is long enough that tests drive ticks by hand.
type testConfig struct {
	source string
	length time.Duration
}

func (c testConfig) GetBackend() string             { return "sim" }
func (c testConfig) GetPlayer() string              { return "mpv" }
func (c testConfig) GetPollInterval() time.Duration { return time.Hour }
func (c testConfig) GetSimDuration() time.Duration  { return c.length }
func (c testConfig) GetSourceAsset() string         { return c.source }
func (c testConfig) ShouldLaunch() bool             { return false }
func (c testConfig) ShouldWatch() bool              { return false }
func (c testConfig) GetLogFile() string             { return "" }
