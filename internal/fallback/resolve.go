// Package fallback centralizes the live-versus-sample data decision that was
// previously duplicated, with slightly inconsistent guards, at every call
// site that rendered a list.
package fallback

// Result carries the chosen data set and whether it came from a live fetch.
type Result[T any] struct {
	Data   []T
	IsLive bool
}

// Resolve picks the server data when it is non-empty and the sample set
// otherwise. The rule is applied independently per list: one screen can be
// live while another degrades to samples.
func Resolve[T any](server, sample []T) Result[T] {
	if len(server) > 0 {
		return Result[T]{Data: server, IsLive: true}
	}
	return Result[T]{Data: sample, IsLive: false}
}
