package domain

// EntrySubmission é o formulário de lançamento diário.
// Date aceita os formatos tolerados pelo reconciliador ("2024-05-10", "2024/5/10", "2024年5月10日").
type EntrySubmission struct {
	Date                 string `json:"date"`
	RoutineCTPatients    int    `json:"routine_ct_patients"`
	RoutineCTSites       int    `json:"routine_ct_sites"`
	RoutineDRPatients    int    `json:"routine_dr_patients"`
	RoutineDRSites       int    `json:"routine_dr_sites"`
	ExamCTSites          int    `json:"exam_ct_sites"`
	ExamDRSites          int    `json:"exam_dr_sites"`
	ExamFluoroscopySites int    `json:"exam_fluoroscopy_sites"`
}

// SubmissionResult é devolvido após um envio aceito
type SubmissionResult struct {
	Entry  WorkloadEntry `json:"entry"`
	Target string        `json:"target"`
}
