package i18n

var catalog = map[Language]map[string]string{
	Greek: {
		"el":      "Ελληνικά",
		"en":      "English",
		"greek":   "Ελληνικά",
		"english": "English",

		"welcome":  "Ημερολόγιο καλλιεργειών",
		"list":     "Λίστα",
		"calendar": "Ημερολόγιο",
		"grouped":  "Ανά φυτό",
		"id":       "ID",
		"date":     "Ημερομηνία",
		"plant":    "Φυτό",
		"task":     "Εργασία",
		"notes":    "Σημειώσεις",
		"created":  "Καταχωρίστηκε",

		"allPlants":            "Όλα τα φυτά",
		"allTasks":             "Όλες οι εργασίες",
		"noEntries":            "Δεν υπάρχουν καταχωρίσεις",
		"noEntriesHint":        "Προσθέστε την πρώτη καταχώριση για τις καλλιέργειές σας!",
		"noEntriesWithFilters": "Δεν βρέθηκαν καταχωρίσεις με τα επιλεγμένα φίλτρα",
		"noEntriesToView":      "Δεν υπάρχουν καταχωρίσεις για προβολή",
		"noEntriesThisMonth":   "Δεν υπάρχουν καταχωρίσεις αυτόν τον μήνα",
		"entriesForDay":        "Καταχωρίσεις για %s",
		"entryCount":           "%d καταχωρίσεις",

		"entrySaved":     "Η καταχώριση αποθηκεύτηκε",
		"entryUpdated":   "Η καταχώριση ενημερώθηκε",
		"entryDeleted":   "Η καταχώριση διαγράφηκε",
		"entryNotFound":  "Η καταχώριση δεν βρέθηκε",
		"confirmDelete":  "Διαγραφή αυτής της καταχώρισης; [y/N]: ",
		"deleteCanceled": "Η διαγραφή ακυρώθηκε",
		"noChanges":      "Δεν δόθηκαν αλλαγές",
		"invalidDate":    "Μη έγκυρη ημερομηνία: %s",
		"unknownPlant":   "Το φυτό %q δεν υπάρχει στη λίστα",
		"unknownTask":    "Η εργασία %q δεν υπάρχει στη λίστα",

		"builtin":            "ενσωματωμένο",
		"custom":             "προσαρμοσμένο",
		"plantAdded":         "Προστέθηκε το φυτό %s",
		"taskAdded":          "Προστέθηκε η εργασία %s",
		"plantAlreadyExists": "Αυτό το φυτό υπάρχει ήδη",
		"taskAlreadyExists":  "Αυτή η εργασία υπάρχει ήδη",

		"colorGreen":  "Πράσινο",
		"colorRed":    "Κόκκινο",
		"colorBlue":   "Μπλε",
		"colorOrange": "Πορτοκαλί",
		"colorPurple": "Μωβ",
		"colorBrown":  "Καφέ",
		"colorPink":   "Ροζ",
		"colorYellow": "Κίτρινο",

		"language":        "Γλώσσα: %s",
		"languageChanged": "Η γλώσσα ορίστηκε σε %s",

		"backupSuccess":      "Backup επιτυχής!",
		"backupSaved":        "Αποθηκεύτηκε στο %s",
		"backupUploaded":     "Ανέβηκε στο s3://%s/%s",
		"backupError":        "Σφάλμα backup",
		"restoreSuccess":     "Restore επιτυχής! Επαναφέρθηκαν %d καταχωρίσεις",
		"restoreSkipped":     "Παραλείφθηκαν %d καταχωρίσεις",
		"restoreVocabulary":  "Τα προσαρμοσμένα φυτά και οι εργασίες αντικαταστάθηκαν",
		"restoreError":       "Σφάλμα restore",
		"fileReadError":      "Σφάλμα ανάγνωσης αρχείου",
		"s3NotConfigured":    "Δεν έχει ρυθμιστεί S3 bucket (s3.bucket)",
		"snapshotsNone":      "Δεν υπάρχουν αντίγραφα ασφαλείας",
		"snapshotLine":       "#%d  %d καταχωρίσεις",
		"snapshotCorrupt":    "#%d  μη αναγνώσιμο",
		"snapshotRestored":   "Επαναφέρθηκε το αντίγραφο #%d",
		"healthEmpty":        "Δεν έχουν αποθηκευτεί καταχωρίσεις ακόμη",
		"healthOK":           "Αποθήκευση εντάξει: %d καταχωρίσεις",
		"healthCorrupt":      "Τα αποθηκευμένα δεδομένα δεν διαβάζονται: %s",
		"healthMissing":      "%d καταχωρίσεις χωρίς υποχρεωτικό πεδίο",
		"healthDuplicates":   "%d διπλότυπα ID",
		"healthSnapshots":    "Διαθέσιμα αντίγραφα: %d",
		"storageCorrupted":   "Οι αποθηκευμένες καταχωρίσεις δεν διαβάζονται και εμφανίζονται κενές",
		"storageError":       "Σφάλμα αποθήκευσης δεδομένων",
		"validationError":    "Μη έγκυρα δεδομένα",
		"invalidFormatError": "Μη έγκυρη μορφή αρχείου",
		"unexpectedError":    "Απρόσμενο σφάλμα",
		"details":            "Λεπτομέρειες: %v",
		"listHint":           "Δείτε τα αναγνωριστικά με 'croplog list'",

		"helpUpDown":   "↑/↓ μετακίνηση",
		"helpSwitch":   "tab προβολή",
		"helpFilter":   "f φίλτρο φυτού",
		"helpDelete":   "d διαγραφή",
		"helpRefresh":  "r ανανέωση",
		"helpQuit":     "q έξοδος",
		"confirmYesNo": "Διαγραφή; y/n",
		"filterLabel":  "Φίλτρο: %s",
		"loading":      "Φόρτωση...",

		"statistics":   "Στατιστικά",
		"statsEntries": "Καταχωρίσεις: %d",
		"statsDays":    "Ημέρες με καταχωρίσεις: %d",
		"statsPlants":  "Φυτά: %d",
		"statsSpan":    "Διάστημα: %s έως %s",
		"statsByPlant": "Ανά φυτό",
		"statsByTask":  "Ανά εργασία",
		"statsLast":    "τελευταία %s",
	},
	English: {
		"el":      "Ελληνικά",
		"en":      "English",
		"greek":   "Greek",
		"english": "English",

		"welcome":  "Crop journal",
		"list":     "List",
		"calendar": "Calendar",
		"grouped":  "By plant",
		"id":       "ID",
		"date":     "Date",
		"plant":    "Plant",
		"task":     "Task",
		"notes":    "Notes",
		"created":  "Recorded",

		"allPlants":            "All plants",
		"allTasks":             "All tasks",
		"noEntries":            "No entries yet",
		"noEntriesHint":        "Add the first entry for your crops!",
		"noEntriesWithFilters": "No entries match the selected filters",
		"noEntriesToView":      "No entries to view",
		"noEntriesThisMonth":   "No entries this month",
		"entriesForDay":        "Entries for %s",
		"entryCount":           "%d entries",

		"entrySaved":     "Entry saved",
		"entryUpdated":   "Entry updated",
		"entryDeleted":   "Entry deleted",
		"entryNotFound":  "Entry not found",
		"confirmDelete":  "Delete this entry? [y/N]: ",
		"deleteCanceled": "Deletion canceled",
		"noChanges":      "No changes specified",
		"invalidDate":    "Invalid date: %s",
		"unknownPlant":   "Plant %q is not in the list",
		"unknownTask":    "Task %q is not in the list",

		"builtin":            "built-in",
		"custom":             "custom",
		"plantAdded":         "Added plant %s",
		"taskAdded":          "Added task %s",
		"plantAlreadyExists": "This plant already exists",
		"taskAlreadyExists":  "This task already exists",

		"colorGreen":  "Green",
		"colorRed":    "Red",
		"colorBlue":   "Blue",
		"colorOrange": "Orange",
		"colorPurple": "Purple",
		"colorBrown":  "Brown",
		"colorPink":   "Pink",
		"colorYellow": "Yellow",

		"language":        "Language: %s",
		"languageChanged": "Language set to %s",

		"backupSuccess":      "Backup successful!",
		"backupSaved":        "Saved to %s",
		"backupUploaded":     "Uploaded to s3://%s/%s",
		"backupError":        "Backup failed",
		"restoreSuccess":     "Restore successful! %d entries restored",
		"restoreSkipped":     "%d entries skipped",
		"restoreVocabulary":  "Custom plants and tasks were replaced",
		"restoreError":       "Restore failed",
		"fileReadError":      "Could not read file",
		"s3NotConfigured":    "No S3 bucket configured (s3.bucket)",
		"snapshotsNone":      "No snapshots available",
		"snapshotLine":       "#%d  %d entries",
		"snapshotCorrupt":    "#%d  unreadable",
		"snapshotRestored":   "Restored snapshot #%d",
		"healthEmpty":        "No entries stored yet",
		"healthOK":           "Storage OK: %d entries",
		"healthCorrupt":      "Stored data cannot be read: %s",
		"healthMissing":      "%d entries missing a required field",
		"healthDuplicates":   "%d duplicate IDs",
		"healthSnapshots":    "Snapshots available: %d",
		"storageCorrupted":   "Stored entries are unreadable and are shown as empty",
		"storageError":       "Could not access stored data",
		"validationError":    "Invalid input",
		"invalidFormatError": "Invalid file format",
		"unexpectedError":    "Unexpected error",
		"details":            "Details: %v",
		"listHint":           "Run 'croplog list' to see entry ids",

		"helpUpDown":   "↑/↓ move",
		"helpSwitch":   "tab view",
		"helpFilter":   "f plant filter",
		"helpDelete":   "d delete",
		"helpRefresh":  "r refresh",
		"helpQuit":     "q quit",
		"confirmYesNo": "Delete? y/n",
		"filterLabel":  "Filter: %s",
		"loading":      "Loading...",

		"statistics":   "Statistics",
		"statsEntries": "Entries: %d",
		"statsDays":    "Days with entries: %d",
		"statsPlants":  "Plants: %d",
		"statsSpan":    "Span: %s to %s",
		"statsByPlant": "By plant",
		"statsByTask":  "By task",
		"statsLast":    "last %s",
	},
}
