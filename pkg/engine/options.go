package engine

type Options struct {
	Threads          int
	Depth            int
	ProgressMinNodes int
}

func NewOptions() Options {
	return Options{
		Threads:          1,
		Depth:            4,
		ProgressMinNodes: 200_000,
	}
}
