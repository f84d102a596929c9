package routers

import (
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"

	"github.com/edgefleet-io/edgefleet/internal/handlers"
)

type APIRouterOptions struct {
	Logger *zap.SugaredLogger
	Api    *handlers.API
}

func NewAPIRouter(o APIRouterOptions) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(ginzap.GinzapWithConfig(o.Logger.Desugar(), &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
	}))
	r.Use(ginzap.RecoveryWithZap(o.Logger.Desugar(), true))

	newPrometheus().Use(r)

	api := o.Api
	v1 := r.Group("/api/v1")
	{
		addressable := v1.Group("/addressable")
		{
			addressable.GET("", api.ListAddressables)
			addressable.POST("", api.CreateAddressable)
			addressable.GET("/:id", api.GetAddressable)
			addressable.PUT("/:id", api.UpdateAddressable)
			addressable.DELETE("/:id", api.DeleteAddressable)
			addressable.GET("/name/:name", api.GetAddressableByName)
			addressable.DELETE("/name/:name", api.DeleteAddressableByName)
		}
		service := v1.Group("/deviceservice")
		{
			service.GET("", api.ListDeviceServices)
			service.POST("", api.CreateDeviceService)
			service.GET("/:id", api.GetDeviceService)
			service.PUT("/:id", api.UpdateDeviceService)
			service.DELETE("/:id", api.DeleteDeviceService)
			service.GET("/name/:name", api.GetDeviceServiceByName)
			service.DELETE("/name/:name", api.DeleteDeviceServiceByName)
		}
		profile := v1.Group("/deviceprofile")
		{
			profile.GET("", api.ListDeviceProfiles)
			profile.POST("", api.CreateDeviceProfile)
			profile.GET("/:id", api.GetDeviceProfile)
			profile.PUT("/:id", api.UpdateDeviceProfile)
			profile.DELETE("/:id", api.DeleteDeviceProfile)
			profile.GET("/name/:name", api.GetDeviceProfileByName)
			profile.DELETE("/name/:name", api.DeleteDeviceProfileByName)
		}
		device := v1.Group("/device")
		{
			device.GET("", api.ListDevices)
			device.POST("", api.CreateDevice)
			device.GET("/:id", api.GetDevice)
			device.PUT("/:id", api.UpdateDevice)
			device.DELETE("/:id", api.DeleteDevice)
			device.GET("/name/:name", api.GetDeviceByName)
			device.DELETE("/name/:name", api.DeleteDeviceByName)
		}
		schedule := v1.Group("/schedule")
		{
			schedule.GET("", api.ListSchedules)
			schedule.POST("", api.CreateSchedule)
			schedule.GET("/:id", api.GetSchedule)
			schedule.PUT("/:id", api.UpdateSchedule)
			schedule.DELETE("/:id", api.DeleteSchedule)
			schedule.GET("/name/:name", api.GetScheduleByName)
			schedule.DELETE("/name/:name", api.DeleteScheduleByName)
		}
		event := v1.Group("/scheduleevent")
		{
			event.GET("", api.ListScheduleEvents)
			event.POST("", api.CreateScheduleEvent)
			event.GET("/:id", api.GetScheduleEvent)
			event.PUT("/:id", api.UpdateScheduleEvent)
			event.DELETE("/:id", api.DeleteScheduleEvent)
			event.GET("/name/:name", api.GetScheduleEventByName)
			event.DELETE("/name/:name", api.DeleteScheduleEventByName)
		}
		report := v1.Group("/devicereport")
		{
			report.GET("", api.ListDeviceReports)
			report.POST("", api.CreateDeviceReport)
			report.GET("/:id", api.GetDeviceReport)
			report.PUT("/:id", api.UpdateDeviceReport)
			report.DELETE("/:id", api.DeleteDeviceReport)
			report.GET("/name/:name", api.GetDeviceReportByName)
			report.DELETE("/name/:name", api.DeleteDeviceReportByName)
		}
		watcher := v1.Group("/provisionwatcher")
		{
			watcher.GET("", api.ListProvisionWatchers)
			watcher.POST("", api.CreateProvisionWatcher)
			watcher.GET("/:id", api.GetProvisionWatcher)
			watcher.PUT("/:id", api.UpdateProvisionWatcher)
			watcher.DELETE("/:id", api.DeleteProvisionWatcher)
			watcher.GET("/name/:name", api.GetProvisionWatcherByName)
			watcher.DELETE("/name/:name", api.DeleteProvisionWatcherByName)
		}
	}

	return r
}

func newPrometheus() *ginprometheus.Prometheus {
	p := ginprometheus.NewPrometheus("apiserver")
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		url := c.Request.URL.Path
		for _, p := range c.Params {
			if p.Key == "id" || p.Key == "name" {
				url = c.FullPath()
				break
			}
		}
		return url
	}
	return p
}
