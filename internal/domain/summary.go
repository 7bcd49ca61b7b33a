package domain

// Summary is the dashboard snapshot of task counts, computed fresh on
// every call. Statuses outside the four literals count only toward
// TotalTasks. MostUrgentDueDate is nil when no urgent task exists.
type Summary struct {
	TodoCount             int   `json:"todo_count"`
	DoneCount             int   `json:"done_count"`
	InProgressCount       int   `json:"in_progress_count"`
	AwaitingFeedbackCount int   `json:"awaiting_feedback_count"`
	TotalTasks            int   `json:"total_tasks"`
	UrgentCount           int   `json:"urgent_count"`
	MostUrgentDueDate     *Date `json:"most_urgent_due_date"`
}
