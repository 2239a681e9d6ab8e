// Package utils provides input validation shared by the HTTP handlers.
//
// Validation:
//   - Length, null-byte and pattern checks reported as *FieldError
//   - ID and tool ID format (service.tool)
//   - Category and discovery query checks
//
// Example Usage:
//
//	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
//		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	}
package utils
