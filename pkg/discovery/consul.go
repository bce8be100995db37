package discovery

import (
	"fmt"
	"log"
	"strconv"

	"github.com/hashicorp/consul/api"
)

// ServiceRegistry handles service registration and discovery with Consul
type ServiceRegistry struct {
	client      *api.Client
	serviceName string
	serviceID   string
	servicePort string
	tags        []string
}

// NewServiceRegistry creates a new service registry
func NewServiceRegistry(consulAddress, serviceName, serviceID, servicePort string, tags []string) (*ServiceRegistry, error) {
	config := api.DefaultConfig()
	config.Address = consulAddress

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Consul client: %w", err)
	}

	return &ServiceRegistry{
		client:      client,
		serviceName: serviceName,
		serviceID:   serviceID,
		servicePort: servicePort,
		tags:        tags,
	}, nil
}

// Register registers the service with Consul
func (sr *ServiceRegistry) Register() error {
	port, err := strconv.Atoi(sr.servicePort)
	if err != nil {
		return fmt.Errorf("invalid port: %s: %w", sr.servicePort, err)
	}

	registration := &api.AgentServiceRegistration{
		ID:   sr.serviceID,
		Name: sr.serviceName,
		Port: port,
		Tags: sr.tags,
		Check: &api.AgentServiceCheck{
			HTTP:     fmt.Sprintf("http://%s:%s/health", sr.serviceName, sr.servicePort),
			Interval: "10s",
			Timeout:  "5s",
		},
	}

	if err := sr.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service: %w", err)
	}

	log.Printf("Service %s registered with Consul", sr.serviceName)
	return nil
}

// Deregister deregisters the service from Consul
func (sr *ServiceRegistry) Deregister() error {
	if err := sr.client.Agent().ServiceDeregister(sr.serviceID); err != nil {
		return fmt.Errorf("failed to deregister service: %w", err)
	}

	log.Printf("Service %s deregistered from Consul", sr.serviceName)
	return nil
}

// GetService gets the address of one healthy instance of a service
func (sr *ServiceRegistry) GetService(name string) (string, error) {
	services, _, err := sr.client.Health().Service(name, "", true, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get service: %w", err)
	}

	if len(services) == 0 {
		return "", fmt.Errorf("no healthy instances of service %s found", name)
	}

	service := services[0]
	address := service.Service.Address
	if address == "" {
		address = service.Node.Address
	}

	return fmt.Sprintf("%s:%d", address, service.Service.Port), nil
}
