package http

import (
	"net/http"

	"rx-prescription-api/internal/delivery/http/handler"
	"rx-prescription-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Router struct {
	router               *mux.Router
	db                   *gorm.DB
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	medicineHandler      *handler.MedicineHandler
	investigationHandler *handler.InvestigationHandler
	prescriptionHandler  *handler.PrescriptionHandler
	certificateHandler   *handler.CertificateHandler
	shareHandler         *handler.ShareHandler
	uploadHandler        *handler.UploadHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
	uploadDir            string
	tempDir              string
}

func NewRouter(
	db *gorm.DB,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	medicineHandler *handler.MedicineHandler,
	investigationHandler *handler.InvestigationHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	certificateHandler *handler.CertificateHandler,
	shareHandler *handler.ShareHandler,
	uploadHandler *handler.UploadHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	uploadDir string,
	tempDir string,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		db:                   db,
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		medicineHandler:      medicineHandler,
		investigationHandler: investigationHandler,
		prescriptionHandler:  prescriptionHandler,
		certificateHandler:   certificateHandler,
		shareHandler:         shareHandler,
		uploadHandler:        uploadHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
		uploadDir:            uploadDir,
		tempDir:              tempDir,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health checks
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	api.HandleFunc("/health/db", r.dbHealthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	auth.HandleFunc("/forgot-password", r.authHandler.ForgotPassword).Methods(http.MethodPost)
	auth.HandleFunc("/reset-password", r.authHandler.ResetPassword).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Clinical routes (protected - doctor only)
	doctor := api.PathPrefix("").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)

	doctor.HandleFunc("/doctor/profile", r.doctorHandler.GetProfile).Methods(http.MethodGet)
	doctor.HandleFunc("/doctor/profile", r.doctorHandler.UpdateProfile).Methods(http.MethodPut)

	doctor.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	doctor.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/patients/{id}/history", r.patientHandler.GetPatientHistory).Methods(http.MethodGet)

	doctor.HandleFunc("/medicines", r.medicineHandler.CreateMedicine).Methods(http.MethodPost)
	doctor.HandleFunc("/medicines", r.medicineHandler.SearchMedicines).Methods(http.MethodGet)
	doctor.HandleFunc("/medicines/external", r.medicineHandler.SearchExternal).Methods(http.MethodGet)

	doctor.HandleFunc("/investigations", r.investigationHandler.ListInvestigations).Methods(http.MethodGet)

	doctor.HandleFunc("/prescriptions", r.prescriptionHandler.CreatePrescription).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.GetPrescription).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}/pdf", r.prescriptionHandler.DownloadPDF).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}/temp-link", r.shareHandler.CreateTempLink).Methods(http.MethodPost)

	doctor.HandleFunc("/certificates", r.certificateHandler.CreateCertificate).Methods(http.MethodPost)
	doctor.HandleFunc("/certificates/{id}", r.certificateHandler.GetCertificate).Methods(http.MethodGet)
	doctor.HandleFunc("/certificates/{id}/pdf", r.certificateHandler.DownloadPDF).Methods(http.MethodGet)

	doctor.HandleFunc("/share/email", r.shareHandler.SendEmail).Methods(http.MethodPost)

	doctor.HandleFunc("/uploads", r.uploadHandler.Upload).Methods(http.MethodPost)

	// Static file serving: uploaded assets and temporary download links
	r.router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(r.uploadDir))))
	r.router.PathPrefix("/temp/").Handler(
		http.StripPrefix("/temp/", http.FileServer(http.Dir(r.tempDir))))

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}

func (r *Router) dbHealthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sqlDB, err := r.db.DB()
	if err == nil {
		err = sqlDB.PingContext(req.Context())
	}
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status": "error", "database": "unreachable"}`))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok", "database": "ok"}`))
}
