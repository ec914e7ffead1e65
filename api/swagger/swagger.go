package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Shule API",
        "description": "School management API: students, fees, attendance, academics, notices",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student enrolment and records"},
        {"name": "Parents", "description": "Guardian records"},
        {"name": "Finance", "description": "Fee lines and payments"},
        {"name": "Attendance", "description": "Daily register"},
        {"name": "Academics", "description": "Exams and marks"},
        {"name": "Notices", "description": "School announcements"},
        {"name": "Dashboard", "description": "Aggregated landing-page figures"},
        {"name": "Reports", "description": "Tabular exports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/students": {
            "get": {
                "tags": ["Students"],
                "summary": "List students",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Enrol student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Students"],
                "summary": "Update student fields",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/parents": {
            "get": {
                "tags": ["Parents"],
                "summary": "List parents",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Parents"],
                "summary": "Register parent",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateParentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/fees": {
            "get": {
                "tags": ["Finance"],
                "summary": "List fee lines",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Finance"],
                "summary": "Define fee line",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFeeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/payments": {
            "get": {
                "tags": ["Finance"],
                "summary": "List payments",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Finance"],
                "summary": "Record payment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecordPaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown student or validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List register entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Mark attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MarkAttendanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/exams": {
            "get": {
                "tags": ["Academics"],
                "summary": "List exams",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Academics"],
                "summary": "Schedule exam",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateExamRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/marks": {
            "get": {
                "tags": ["Academics"],
                "summary": "List marks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Academics"],
                "summary": "Record mark",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RecordMarkRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown student/exam or validation failure", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/notices": {
            "get": {
                "tags": ["Notices"],
                "summary": "List notices",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Notices"],
                "summary": "Publish notice",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNoticeRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard summary",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/reports/students.csv": {
            "get": {
                "tags": ["Reports"],
                "summary": "Student roster CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "CSV body"}
                }
            }
        },
        "/api/reports/payments.pdf": {
            "get": {
                "tags": ["Reports"],
                "summary": "Payments statement PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF body"}
                }
            }
        }
    },
    "definitions": {
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "admissionNo": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "levelId": {"type": "string"},
                "gradeId": {"type": "string"},
                "streamId": {"type": "string"},
                "dob": {"type": "string"},
                "gender": {"type": "string"},
                "status": {"type": "string"},
                "photo": {"type": "string"},
                "parentContact": {"type": "string"},
                "emergencyContact": {"type": "string"},
                "medicalNotes": {"type": "string"}
            },
            "required": ["admissionNo", "firstName", "lastName", "levelId", "gradeId", "dob", "gender"]
        },
        "StudentPatch": {
            "type": "object",
            "properties": {
                "admissionNo": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "levelId": {"type": "string"},
                "gradeId": {"type": "string"},
                "streamId": {"type": "string"},
                "dob": {"type": "string"},
                "gender": {"type": "string"},
                "status": {"type": "string"},
                "photo": {"type": "string"},
                "parentContact": {"type": "string"},
                "emergencyContact": {"type": "string"},
                "medicalNotes": {"type": "string"}
            }
        },
        "CreateParentRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "students": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["firstName", "lastName", "phone"]
        },
        "CreateFeeRequest": {
            "type": "object",
            "properties": {
                "levelId": {"type": "string"},
                "gradeId": {"type": "string"},
                "term": {"type": "string"},
                "amount": {"type": "integer"},
                "description": {"type": "string"}
            },
            "required": ["levelId", "term", "amount"]
        },
        "RecordPaymentRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "amount": {"type": "integer"},
                "method": {"type": "string"},
                "reference": {"type": "string"},
                "date": {"type": "string"},
                "term": {"type": "string"}
            },
            "required": ["studentId", "amount", "method", "date", "term"]
        },
        "MarkAttendanceRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "date": {"type": "string"},
                "status": {"type": "string", "enum": ["present", "absent", "late"]}
            },
            "required": ["studentId", "date", "status"]
        },
        "CreateExamRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "term": {"type": "string"},
                "year": {"type": "integer"},
                "levelId": {"type": "string"}
            },
            "required": ["name", "term", "year", "levelId"]
        },
        "RecordMarkRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "integer"},
                "examId": {"type": "integer"},
                "subjectId": {"type": "string"},
                "score": {"type": "integer"},
                "remark": {"type": "string"}
            },
            "required": ["studentId", "examId", "subjectId"]
        },
        "CreateNoticeRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "content": {"type": "string"},
                "audience": {"type": "string", "enum": ["All", "Parents", "Teachers"]},
                "date": {"type": "string"}
            },
            "required": ["title", "content", "audience", "date"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
