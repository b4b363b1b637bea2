package controllers

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"resort/config"
	"resort/dto"
	"resort/models"
	"resort/response"
	"resort/validator"

	"github.com/gin-gonic/gin"
)

func convertToServiceResponse(service models.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:              service.ID,
		ServiceName:     service.ServiceName,
		Description:     service.Description,
		Price:           service.Price,
		ServiceTypeID:   service.ServiceTypeID,
		ServiceTypeName: service.ServiceType.TypeName,
		CreatedAt:       service.CreatedAt,
		UpdatedAt:       service.UpdatedAt,
	}
}

func GetAllServices(c *gin.Context) {
	var allServices []models.Service
	if err := config.DB.Preload("ServiceType").Find(&allServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageStr := c.Query("page")
	limitStr := c.Query("limit")
	nameFilter := c.Query("name")
	serviceTypeStr := c.Query("serviceTypeId")

	page := 0
	limit := 10
	if pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	filteredServices := make([]models.Service, 0)
	for _, service := range allServices {
		if nameFilter != "" {
			decodedName, _ := url.QueryUnescape(nameFilter)
			if !strings.Contains(strings.ToLower(service.ServiceName), strings.ToLower(decodedName)) {
				continue
			}
		}
		if serviceTypeStr != "" {
			parsedType, err := strconv.Atoi(serviceTypeStr)
			if err == nil && service.ServiceTypeID != uint(parsedType) {
				continue
			}
		}
		filteredServices = append(filteredServices, service)
	}

	totalFiltered := len(filteredServices)

	sort.Slice(filteredServices, func(i, j int) bool {
		return filteredServices[i].UpdatedAt.After(filteredServices[j].UpdatedAt)
	})

	start := page * limit
	end := start + limit
	if start >= totalFiltered {
		filteredServices = []models.Service{}
	} else if end > totalFiltered {
		filteredServices = filteredServices[start:]
	} else {
		filteredServices = filteredServices[start:end]
	}

	serviceResponses := make([]dto.ServiceResponse, 0, len(filteredServices))
	for _, service := range filteredServices {
		serviceResponses = append(serviceResponses, convertToServiceResponse(service))
	}

	response.SuccessWithPagination(c, serviceResponses, page, limit, totalFiltered)
}

func CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var serviceType models.ServiceType
	if err := config.DB.First(&serviceType, request.ServiceTypeID).Error; err != nil {
		response.BadRequest(c, "Không tìm thấy loại dịch vụ")
		return
	}

	service := models.Service{
		ServiceName:   request.ServiceName,
		Description:   request.Description,
		Price:         request.Price,
		ServiceTypeID: request.ServiceTypeID,
	}

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("ServiceType").First(&service, service.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

func GetServiceDetail(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := config.DB.Preload("ServiceType").
		Where("id = ?", serviceID).
		First(&service).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

func UpdateService(c *gin.Context) {
	var request dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, request.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if request.ServiceName != "" {
		service.ServiceName = request.ServiceName
	}
	if request.Description != "" {
		service.Description = request.Description
	}
	if request.Price != 0 {
		service.Price = request.Price
	}
	if request.ServiceTypeID != 0 {
		var serviceType models.ServiceType
		if err := config.DB.First(&serviceType, request.ServiceTypeID).Error; err != nil {
			response.BadRequest(c, "Không tìm thấy loại dịch vụ")
			return
		}
		service.ServiceTypeID = request.ServiceTypeID
	}

	if err := validator.ValidateService(&service); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Preload("ServiceType").First(&service, service.ID).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertToServiceResponse(service))
}

func DeleteService(c *gin.Context) {
	serviceID := c.Param("id")

	var service models.Service
	if err := config.DB.First(&service, serviceID).Error; err != nil {
		response.NotFound(c)
		return
	}

	// Dòng dịch vụ đã snapshot trên booking vẫn giữ nguyên
	if err := config.DB.Delete(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"message": "Dịch vụ đã được xóa"})
}

func GetServiceTypes(c *gin.Context) {
	var serviceTypes []models.ServiceType
	if err := config.DB.Find(&serviceTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, serviceTypes)
}

func CreateServiceType(c *gin.Context) {
	var request dto.CreateServiceTypeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	serviceType := models.ServiceType{
		TypeName:    request.TypeName,
		Description: request.Description,
	}

	if err := config.DB.Create(&serviceType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, serviceType)
}
