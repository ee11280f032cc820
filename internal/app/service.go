package app

import (
	"rosdep-sources/internal/adapters"
	"rosdep-sources/internal/ports"
)

// Service runs the sources list operations. Fetcher and Platform are
// optional; when nil they are built from the request.
type Service struct {
	SourcesList ports.SourcesListPort
	Cache       ports.SourcesCachePort
	Fetcher     ports.RosdepFetcherPort
	Platform    ports.PlatformPort
}

func NewService() Service {
	return Service{
		SourcesList: adapters.NewSourcesListFileAdapter(),
		Cache:       adapters.NewSourcesCacheFileAdapter(),
	}
}

func (s Service) fetcherFor(timeoutSec int) ports.RosdepFetcherPort {
	if s.Fetcher != nil {
		return s.Fetcher
	}
	return adapters.NewRosdepFetcherHTTPAdapter(timeoutSec)
}

func (s Service) platformFor(req PlatformRequest) ports.PlatformPort {
	if s.Platform != nil {
		return s.Platform
	}
	return adapters.NewPlatformOSReleaseAdapter(req.OSReleasePath, req.OSName, req.OSCodename, req.Distro)
}
