package container

import (
	"interfaces-generator/internal/application/usecases"
	"interfaces-generator/internal/domain/interfaces"
	"interfaces-generator/internal/infrastructure/adapters"
	"interfaces-generator/internal/infrastructure/api"
	"interfaces-generator/internal/infrastructure/config"
	"interfaces-generator/internal/infrastructure/health"
	"interfaces-generator/internal/infrastructure/network"

	"github.com/sirupsen/logrus"
)

// Container는 의존성 주입을 관리하는 컨테이너입니다
type Container struct {
	config *config.Config
	logger *logrus.Logger

	// 인프라스트럭처 어댑터들
	fileSystem  interfaces.FileSystem
	clock       interfaces.Clock
	idGenerator interfaces.IDGenerator
	linkSource  interfaces.LinkSource
	renderer    interfaces.ConfigRenderer

	// 서비스들
	healthService *health.HealthService

	// 유스케이스
	renderConfigUseCase       *usecases.RenderConfigUseCase
	discoverInterfacesUseCase *usecases.DiscoverInterfacesUseCase
	interfaceEditor           *usecases.InterfaceEditor
}

// NewContainer는 새로운 Container를 생성합니다
func NewContainer(cfg *config.Config, logger *logrus.Logger) *Container {
	container := &Container{
		config: cfg,
		logger: logger,
	}

	container.initializeInfrastructure()
	container.initializeServices()
	container.initializeUseCases()

	return container
}

// initializeInfrastructure는 인프라스트럭처 컴포넌트들을 초기화합니다
func (c *Container) initializeInfrastructure() {
	c.fileSystem = adapters.NewRealFileSystem()
	c.clock = adapters.NewRealClock()
	c.idGenerator = adapters.NewUUIDGenerator()
	c.linkSource = adapters.NewNetlinkLinkSource(c.logger)
	c.renderer = network.NewInterfacesRenderer(c.config.Generator.TargetPath)
}

// initializeServices는 서비스들을 초기화합니다
func (c *Container) initializeServices() {
	c.healthService = health.NewHealthService(c.clock, c.logger)
}

// initializeUseCases는 유스케이스들을 초기화합니다
func (c *Container) initializeUseCases() {
	c.renderConfigUseCase = usecases.NewRenderConfigUseCase(
		c.fileSystem,
		c.renderer,
		c.idGenerator,
		c.clock,
		c.logger,
	)

	c.discoverInterfacesUseCase = usecases.NewDiscoverInterfacesUseCase(
		c.linkSource,
		c.logger,
	)

	c.interfaceEditor = usecases.NewInterfaceEditor(
		c.idGenerator,
		c.renderer,
		c.clock,
		c.logger,
	)
}

// GetConfig는 설정을 반환합니다
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLogger는 로거를 반환합니다
func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}

// GetHealthService는 헬스 서비스를 반환합니다
func (c *Container) GetHealthService() *health.HealthService {
	return c.healthService
}

// GetRenderConfigUseCase는 설정 생성 유스케이스를 반환합니다
func (c *Container) GetRenderConfigUseCase() *usecases.RenderConfigUseCase {
	return c.renderConfigUseCase
}

// GetDiscoverInterfacesUseCase는 인터페이스 탐색 유스케이스를 반환합니다
func (c *Container) GetDiscoverInterfacesUseCase() *usecases.DiscoverInterfacesUseCase {
	return c.discoverInterfacesUseCase
}

// GetInterfaceEditor는 편집 세션을 반환합니다
func (c *Container) GetInterfaceEditor() *usecases.InterfaceEditor {
	return c.interfaceEditor
}

// GetAPIHandler는 편집 세션과 헬스 서비스를 묶은 HTTP 핸들러를 생성합니다
func (c *Container) GetAPIHandler() *api.Handler {
	return api.NewHandler(c.interfaceEditor, c.healthService, c.logger)
}
