package api

import "fmt"

const (
	// BaseURL is the base URL for the Trassenfinder web API
	BaseURL = "https://www.trassenfinder.de/api/web"

	// EndpointInfrastructures returns the index of all published infrastructures
	EndpointInfrastructures = "/infrastrukturen"
)

// infrastructureEndpoint returns the path of a single infrastructure document
func infrastructureEndpoint(id uint64) string {
	return fmt.Sprintf("%s/%d", EndpointInfrastructures, id)
}
