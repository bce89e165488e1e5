//go:build !unix

package installer

func writable(string) bool {
	return true
}
