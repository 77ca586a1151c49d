package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
	Stereo bool
	Tokens bool
	Config bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("DSMI_DEBUG_ENCODE")
	d.Decode = boolEnv("DSMI_DEBUG_DECODE")
	d.Stereo = boolEnv("DSMI_DEBUG_STEREO")
	d.Tokens = boolEnv("DSMI_DEBUG_TOKENS")
	d.Config = boolEnv("DSMI_DEBUG_CONFIG")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Stereo() bool {
	return d.Stereo
}
func Tokens() bool {
	return d.Tokens
}
func Config() bool {
	return d.Config
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte{'\n'})
}

// Writer is where debug output goes.
func Writer() io.Writer {
	return os.Stderr
}
