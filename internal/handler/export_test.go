package handler

// Export for testing
type UploadResponse = uploadResponse
type UploadedFileResponse = uploadedFileResponse
type RevenueResponse = revenueResponse
type ForecastResponse = forecastResponse
type InventoryResponse = inventoryResponse
type PricingResponse = pricingResponse
type ChurnRiskResponse = churnRiskResponse
type SegmentResponse = segmentResponse
type AttributionResponse = attributionResponse
type AlertResponse = alertResponse

var WriteServiceError = writeServiceError
