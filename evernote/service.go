package evernote

import (
	"fmt"
	"strings"
)

// Service selects the Evernote environment a client talks to.
type Service int

const (
	Sandbox Service = iota
	Production
)

const userStorePath = "/edam/user"

var serviceNames = map[Service]string{
	Sandbox:    "SANDBOX",
	Production: "PRODUCTION",
}

var serviceHosts = map[Service]string{
	Sandbox:    "https://sandbox.evernote.com",
	Production: "https://www.evernote.com",
}

func (s Service) String() string {
	if name, ok := serviceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Service(%d)", int(s))
}

// BaseURL returns the scheme and host of the environment.
func (s Service) BaseURL() string {
	return serviceHosts[s]
}

// UserStoreURL returns the user store endpoint of the environment.
func (s Service) UserStoreURL() string {
	return s.BaseURL() + userStorePath
}

// MarshalText implements encoding.TextMarshaler.
func (s Service) MarshalText() ([]byte, error) {
	if _, ok := serviceNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownService, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are case-insensitive
// and an empty value selects the sandbox.
func (s *Service) UnmarshalText(text []byte) error {
	name := strings.ToUpper(strings.TrimSpace(string(text)))
	if name == "" {
		*s = Sandbox
		return nil
	}

	for service, n := range serviceNames {
		if n == name {
			*s = service
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownService, string(text))
}
