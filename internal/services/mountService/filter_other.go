//go:build !linux

package mountservice

// PseudoMagic always reports false off Linux; only the statfs backend can
// supply a magic number, so filtering is name-only elsewhere.
func PseudoMagic(magic int64) bool {
	return false
}
