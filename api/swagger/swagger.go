package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Reports API",
        "description": "Reporting and analytics over campus events, registrations, attendance and feedback.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Reports",
            "description": "College scoped analytics"
        },
        {
            "name": "Categories",
            "description": "Event category catalogue"
        }
    ],
    "paths": {
        "/colleges/{college_id}/reports/event-popularity": {
            "get": {
                "tags": [
                    "Reports"
                ],
                "summary": "Event popularity report",
                "description": "Ranks published and completed events by registrations, then average rating.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "college_id",
                        "in": "path",
                        "type": "string",
                        "description": "College ID",
                        "required": true
                    },
                    {
                        "name": "start_date",
                        "in": "query",
                        "type": "string",
                        "description": "Earliest event start (YYYY-MM-DD or RFC3339)",
                        "required": false
                    },
                    {
                        "name": "end_date",
                        "in": "query",
                        "type": "string",
                        "description": "Latest event end (YYYY-MM-DD or RFC3339)",
                        "required": false
                    },
                    {
                        "name": "category_id",
                        "in": "query",
                        "type": "string",
                        "description": "Category ID",
                        "required": false
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Maximum rows",
                        "required": false,
                        "default": 10
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/EventPopularityReport"
                                },
                                "meta": {
                                    "type": "object"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden or college mismatch",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/colleges/{college_id}/reports/student-participation": {
            "get": {
                "tags": [
                    "Reports"
                ],
                "summary": "Student participation report",
                "description": "Engagement of every active student.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "college_id",
                        "in": "path",
                        "type": "string",
                        "description": "College ID",
                        "required": true
                    },
                    {
                        "name": "min_events",
                        "in": "query",
                        "type": "integer",
                        "description": "Minimum live registrations",
                        "required": false,
                        "default": 0
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Maximum rows",
                        "required": false,
                        "default": 50
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/StudentParticipationReport"
                                },
                                "meta": {
                                    "type": "object"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden or college mismatch",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/colleges/{college_id}/reports/top-active-students": {
            "get": {
                "tags": [
                    "Reports"
                ],
                "summary": "Top active students",
                "description": "Students with at least one attendance ranked by the selected metric.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "college_id",
                        "in": "path",
                        "type": "string",
                        "description": "College ID",
                        "required": true
                    },
                    {
                        "name": "metric",
                        "in": "query",
                        "type": "string",
                        "description": "Ranking metric",
                        "required": false,
                        "enum": [
                            "events_attended",
                            "events_registered"
                        ],
                        "default": "events_attended"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "description": "Maximum rows",
                        "required": false,
                        "default": 3
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/TopActiveStudentsReport"
                                },
                                "meta": {
                                    "type": "object"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden or college mismatch",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/colleges/{college_id}/reports/dashboard": {
            "get": {
                "tags": [
                    "Reports"
                ],
                "summary": "College dashboard overview",
                "description": "Event, registration, feedback and category statistics from one snapshot.",
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "college_id",
                        "in": "path",
                        "type": "string",
                        "description": "College ID",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/DashboardReport"
                                },
                                "meta": {
                                    "type": "object"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden or college mismatch",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/colleges/{college_id}/reports/{report}/export": {
            "get": {
                "tags": [
                    "Reports"
                ],
                "summary": "Export a report",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "parameters": [
                    {
                        "name": "college_id",
                        "in": "path",
                        "type": "string",
                        "description": "College ID",
                        "required": true
                    },
                    {
                        "name": "report",
                        "in": "path",
                        "type": "string",
                        "description": "Report name",
                        "required": true,
                        "enum": [
                            "event-popularity",
                            "student-participation",
                            "top-active-students"
                        ]
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "description": "Document format",
                        "required": false,
                        "enum": [
                            "csv",
                            "pdf"
                        ],
                        "default": "csv"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Rendered document",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    },
                    "404": {
                        "description": "Unknown report",
                        "schema": {
                            "$ref": "#/definitions/ErrorEnvelope"
                        }
                    }
                }
            }
        },
        "/event-categories": {
            "get": {
                "tags": [
                    "Categories"
                ],
                "summary": "List event categories",
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/Category"
                                    }
                                },
                                "meta": {
                                    "type": "object"
                                }
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/APIError"
                }
            }
        },
        "Category": {
            "type": "object",
            "properties": {
                "category_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "color_code": {
                    "type": "string"
                }
            }
        },
        "EventPopularityRow": {
            "type": "object",
            "properties": {
                "event_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "short_code": {
                    "type": "string"
                },
                "category_name": {
                    "type": "string"
                },
                "total_registrations": {
                    "type": "integer"
                },
                "total_attendees": {
                    "type": "integer"
                },
                "attendance_rate": {
                    "type": "number"
                },
                "average_rating": {
                    "type": "string"
                },
                "feedback_count": {
                    "type": "integer"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "EventPopularityReport": {
            "type": "object",
            "properties": {
                "events": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/EventPopularityRow"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "total_events": {
                            "type": "integer"
                        },
                        "total_registrations": {
                            "type": "integer"
                        },
                        "average_attendance_rate": {
                            "type": "number"
                        }
                    }
                }
            }
        },
        "StudentParticipationRow": {
            "type": "object",
            "properties": {
                "user_id": {
                    "type": "string"
                },
                "student_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "year_of_study": {
                    "type": "integer"
                },
                "events_registered": {
                    "type": "integer"
                },
                "events_attended": {
                    "type": "integer"
                },
                "attendance_rate": {
                    "type": "number"
                },
                "average_feedback_rating": {
                    "type": "string"
                }
            }
        },
        "StudentParticipationReport": {
            "type": "object",
            "properties": {
                "students": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/StudentParticipationRow"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "total_students": {
                            "type": "integer"
                        },
                        "average_events_per_student": {
                            "type": "number"
                        },
                        "overall_attendance_rate": {
                            "type": "number"
                        }
                    }
                }
            }
        },
        "TopActiveStudentRow": {
            "type": "object",
            "properties": {
                "rank": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "string"
                },
                "student_id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "year_of_study": {
                    "type": "integer"
                },
                "email": {
                    "type": "string"
                },
                "events_registered": {
                    "type": "integer"
                },
                "events_attended": {
                    "type": "integer"
                },
                "attendance_rate": {
                    "type": "number"
                },
                "average_feedback_rating": {
                    "type": "string"
                },
                "recent_events_attended": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "TopActiveStudentsReport": {
            "type": "object",
            "properties": {
                "top_students": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/TopActiveStudentRow"
                    }
                },
                "metadata": {
                    "type": "object",
                    "properties": {
                        "metric_used": {
                            "type": "string"
                        },
                        "total_returned": {
                            "type": "integer"
                        },
                        "generated_at": {
                            "type": "string",
                            "format": "date-time"
                        }
                    }
                }
            }
        },
        "DashboardReport": {
            "type": "object",
            "properties": {
                "overview": {
                    "type": "object",
                    "properties": {
                        "total_events": {
                            "type": "integer"
                        },
                        "published_events": {
                            "type": "integer"
                        },
                        "completed_events": {
                            "type": "integer"
                        },
                        "upcoming_events": {
                            "type": "integer"
                        },
                        "total_registered_students": {
                            "type": "integer"
                        },
                        "total_registrations": {
                            "type": "integer"
                        },
                        "total_attendances": {
                            "type": "integer"
                        },
                        "attendance_rate": {
                            "type": "integer"
                        },
                        "total_feedback": {
                            "type": "integer"
                        },
                        "average_rating": {
                            "type": "number"
                        }
                    }
                },
                "category_breakdown": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "category_id": {
                                "type": "string"
                            },
                            "category_name": {
                                "type": "string"
                            },
                            "event_count": {
                                "type": "integer"
                            },
                            "registration_count": {
                                "type": "integer"
                            }
                        }
                    }
                },
                "generated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
